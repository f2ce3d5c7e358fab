package scoring

import "github.com/harrison/uniqyou/internal/models"

var domainTips = map[models.Domain][]string{
	models.DomainADHD: {
		"Try breaking tasks into smaller, manageable chunks",
		"Use timers or the Pomodoro technique",
		"Create a distraction-free study environment",
		"Consider speaking with a healthcare professional",
	},
	models.DomainAutism: {
		"Create predictable routines that work for you",
		"Use visual schedules or planners",
		"Practice self-advocacy in social situations",
		"Connect with neurodiversity communities",
	},
	models.DomainDyslexia: {
		"Use audiobooks alongside reading",
		"Try text-to-speech software",
		"Break reading into smaller sections",
		"Use multi-sensory learning approaches",
	},
	models.DomainDyscalculia: {
		"Use visual aids and manipulatives",
		"Break math problems into smaller steps",
		"Practice with real-world examples",
		"Consider math tutoring or specialized programs",
	},
	models.DomainDysgraphia: {
		"Use speech-to-text software",
		"Practice typing skills",
		"Break writing into smaller tasks",
		"Use graphic organizers for planning",
	},
	models.DomainDyspraxia: {
		"Practice fine motor activities regularly",
		"Use adaptive tools and equipment",
		"Break complex movements into steps",
		"Consider occupational therapy",
	},
	models.DomainAuditoryProcessing: {
		"Use visual cues and written instructions",
		"Request quiet environments for important conversations",
		"Ask people to speak clearly and face you",
		"Consider assistive listening devices",
	},
	models.DomainVisualProcessing: {
		"Use high-contrast materials",
		"Break visual information into smaller parts",
		"Use color coding and organization systems",
		"Consider vision therapy if recommended",
	},
	models.DomainTourettes: {
		"Learn stress management techniques",
		"Educate others about your condition",
		"Consider behavioral therapy approaches",
		"Connect with Tourette syndrome support groups",
	},
	models.DomainOCD: {
		"Practice mindfulness and relaxation techniques",
		"Work with a therapist on exposure therapy",
		"Develop healthy coping mechanisms",
		"Consider cognitive behavioral therapy",
	},
	models.DomainAnxiety: {
		"Practice deep breathing and relaxation techniques",
		"Challenge negative thought patterns",
		"Gradually face feared situations",
		"Consider therapy or counseling",
	},
	models.DomainDepression: {
		"Maintain regular sleep and exercise routines",
		"Stay connected with supportive people",
		"Practice self-care and stress management",
		"Consider professional mental health support",
	},
	models.DomainSocialCommunication: {
		"Practice social skills in low-pressure situations",
		"Use social stories or scripts for common interactions",
		"Join social skills groups or clubs",
		"Consider social communication therapy",
	},
	models.DomainSensoryProcessing: {
		"Identify and avoid overwhelming sensory experiences",
		"Use sensory tools like fidgets or noise-canceling headphones",
		"Create a sensory-friendly environment",
		"Consider occupational therapy for sensory integration",
	},
}

var genericTips = []string{
	"Consider speaking with a healthcare professional",
	"Research strategies that work for others with similar experiences",
	"Connect with support communities",
	"Keep a journal to track patterns and what helps",
}

// TipsFor returns the strategy list for domain, or the generic list for
// domains without their own entry. The slice is a fresh copy.
func TipsFor(domain models.Domain) []string {
	tips, ok := domainTips[domain]
	if !ok {
		tips = genericTips
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
