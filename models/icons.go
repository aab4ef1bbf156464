package models

const (
	DefaultSkillGroupIcon = "Code"
	DefaultEducationIcon  = "Target"
)

var skillGroupIcons = map[string]string{
	"Programming":    "Code",
	"Frameworks":     "Wrench",
	"Databases":      "Database",
	"AI & ML":        "Brain",
	"Cybersecurity":  "Shield",
	"Creative Tools": "Palette",
}

var educationIcons = map[EducationStatus]string{
	EducationCompleted:  "GraduationCap",
	EducationInProgress: "BookOpen",
	EducationPlanned:    "Zap",
	EducationCertified:  "Award",
}

// SkillIcons are the icon names an admin may attach to skills and skill categories.
var SkillIcons = []string{
	"Code", "Database", "Globe", "Smartphone", "Laptop", "Server", "Cloud",
	"Cpu", "HardDrive", "Wifi", "Shield", "Lock", "Key", "Zap", "Layers",
	"Box", "Package", "Tool", "Wrench", "Hammer", "Screwdriver", "Settings",
	"Cog", "Gear", "Brain", "Lightbulb", "Target", "Rocket", "Star", "Heart",
	"Palette", "Brush", "Image", "Camera", "Video", "Music", "Headphones",
	"Monitor", "Tablet", "Phone", "Watch", "GameController2", "Joystick",
}

// ContactIcons are the icon names an admin may attach to contact links.
var ContactIcons = []string{
	"Mail", "Phone", "MessageCircle", "Send", "Globe", "Linkedin", "Github",
	"Twitter", "Facebook", "Instagram", "Youtube", "Twitch", "Discord",
	"Slack", "Telegram", "WhatsApp", "MapPin", "Building", "User", "Users",
	"Calendar", "Clock", "Link", "ExternalLink", "Share", "AtSign", "Hash",
}

// SkillGroupIcon returns the icon for a skill category title, falling back to Code.
func SkillGroupIcon(category string) string {
	if icon, ok := skillGroupIcons[category]; ok {
		return icon
	}
	return DefaultSkillGroupIcon
}

func EducationIcon(status EducationStatus) string {
	if icon, ok := educationIcons[status]; ok {
		return icon
	}
	return DefaultEducationIcon
}

// NormalizeIcon maps the "none" sentinel to empty and reports whether the
// result is empty or one of allowed.
func NormalizeIcon(icon string, allowed []string) (string, bool) {
	if icon == "" || icon == "none" {
		return "", true
	}
	for _, candidate := range allowed {
		if candidate == icon {
			return icon, true
		}
	}
	return icon, false
}
