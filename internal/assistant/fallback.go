package assistant

import "strings"

type cannedReply struct {
	keywords    []string
	message     string
	suggestions []string
}

var cannedReplies = []cannedReply{
	{
		keywords:    []string{"help", "support"},
		message:     "I'm experiencing technical difficulties, but help is available. Consider reaching out to a licensed mental health professional, your primary care physician, or local support groups. Seeking help is a sign of strength.",
		suggestions: []string{"Contact a mental health professional", "Speak with your primary care doctor", "Look into local support groups", "Research educational resources"},
	},
	{
		keywords:    []string{"adhd", "attention", "focus"},
		message:     "For ADHD and attention challenges, try breaking tasks into smaller chunks, using timers, and creating distraction-free environments. Consider speaking with a healthcare professional for personalized guidance.",
		suggestions: []string{"Try the Pomodoro technique (25-minute focused work sessions)", "Create a dedicated workspace with minimal distractions", "Use apps or tools to help with time management", "Consider speaking with a healthcare professional"},
	},
	{
		keywords:    []string{"autism", "social", "sensory"},
		message:     "For autism-related traits, create predictable routines, use visual schedules, and identify sensory triggers. Connect with autism support organizations for personalized guidance.",
		suggestions: []string{"Create predictable daily routines", "Use visual schedules or planners", "Identify and manage sensory triggers", "Connect with autism support communities"},
	},
	{
		keywords:    []string{"dyslexia", "reading", "learning"},
		message:     "For dyslexia and learning differences, try multi-sensory approaches, audiobooks, and text-to-speech software. Work with educational specialists for personalized strategies.",
		suggestions: []string{"Try audiobooks alongside reading", "Use text-to-speech software", "Break reading into smaller sections", "Connect with dyslexia support organizations"},
	},
}

var defaultCanned = cannedReply{
	message:     "I'm experiencing technical difficulties. If you need immediate support, contact a mental health professional, crisis helpline, or trusted person. Your wellbeing is important.",
	suggestions: []string{"Reach out to a mental health professional", "Contact a crisis helpline if needed", "Talk to someone you trust", "Seek immediate medical attention if in crisis"},
}

// offlineReply picks a canned reply by the first keyword group message
// matches, case-insensitively.
func offlineReply(message string) Reply {
	lower := strings.ToLower(message)
	chosen := defaultCanned
	for _, c := range cannedReplies {
		if containsAny(lower, c.keywords) {
			chosen = c
			break
		}
	}

	suggestions := make([]string, len(chosen.suggestions))
	copy(suggestions, chosen.suggestions)
	return Reply{
		Message:     chosen.message,
		Suggestions: suggestions,
		Offline:     true,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
