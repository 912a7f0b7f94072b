package services

import (
	"phishlms/backend/models"

	"gorm.io/gorm"
)

// SeedSampleData wipes the course catalog, training content and exam question
// bank and re-inserts the samples. Administrative reset only; user accounts
// and histories are untouched.
func (s *ContentService) SeedSampleData() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := wipe.Delete(&models.TrainingContent{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&models.Course{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&models.ExamQuestion{}).Error; err != nil {
			return err
		}

		courses := []models.Course{
			{
				Title:       "Phishing Awareness Basics",
				Description: "Learn the fundamentals of identifying phishing attempts",
				Difficulty:  TierBeginner,
				ContentType: "interactive",
				Duration:    30,
				Modules:     "module1,module2",
			},
			{
				Title:         "Advanced Phishing Techniques",
				Description:   "Learn about sophisticated phishing methods",
				Difficulty:    TierIntermediate,
				ContentType:   "video",
				Duration:      45,
				Modules:       "module3,module4,module5",
				Prerequisites: "Phishing Awareness Basics",
			},
			{
				Title:         "Phishing Incident Response",
				Description:   "Learn how to respond to phishing incidents",
				Difficulty:    TierAdvanced,
				ContentType:   "scenario",
				Duration:      60,
				Modules:       "module6,module7,module8,module9",
				Prerequisites: "Advanced Phishing Techniques",
			},
		}
		if err := tx.Create(&courses).Error; err != nil {
			return err
		}

		content := []models.TrainingContent{
			{
				CourseID:    courses[0].ID,
				Title:       "What is Phishing?",
				Body:        "Phishing is a type of cyber attack where attackers impersonate legitimate organizations to steal sensitive information such as usernames, passwords and card numbers. Watch for urgent or threatening language, requests for personal information, suspicious links or attachments, and spelling errors.",
				ContentType: "interactive",
				Position:    1,
				Duration:    10,
			},
			{
				CourseID:    courses[0].ID,
				Title:       "Identifying Phishing Emails",
				Body:        "Red flags: generic greetings like \"Dear Customer\", urgent requests for immediate action, sender addresses that do not match the organization, poor spelling, and requests for personal information. A legitimate bank will never ask you to verify your account by email.",
				ContentType: "interactive",
				Position:    2,
				Duration:    20,
			},
			{
				CourseID:    courses[1].ID,
				Title:       "Spear Phishing",
				Body:        "Spear phishing targets specific individuals with personalized messages that use your name, position or other personal details and often appear to come from someone you know. Verify unusual requests via another channel and use multi-factor authentication.",
				ContentType: "video",
				Position:    1,
				Duration:    15,
			},
			{
				CourseID:    courses[2].ID,
				Title:       "Responding to an Incident",
				Body:        "If you suspect a successful phish: disconnect the machine, report to your security team immediately, reset exposed credentials from a clean device, and preserve the original message for analysis.",
				ContentType: "scenario",
				Position:    1,
				Duration:    20,
			},
		}
		if err := tx.Create(&content).Error; err != nil {
			return err
		}

		questions := []models.ExamQuestion{
			{
				Question:      "Which of the following is a sign of a phishing email?",
				Options:       `["Generic greeting like 'Dear Customer'","Urgent request for personal information","Suspicious email address","All of the above"]`,
				CorrectAnswer: 3,
				Explanation:   "All three are classic phishing indicators.",
				SequenceOrder: 1,
			},
			{
				Question:      "What should you do if you receive a suspicious email?",
				Options:       `["Click on links to verify","Reply with your information","Report it to your IT department","Forward it to colleagues"]`,
				CorrectAnswer: 2,
				Explanation:   "Reporting lets the security team warn others and block the sender.",
				SequenceOrder: 2,
			},
			{
				Question:      "An email from your bank asks you to confirm your password. What is the safest response?",
				Options:       `["Reply with the password","Open the bank's site directly and check your account","Call the number in the email","Ignore your account entirely"]`,
				CorrectAnswer: 1,
				Explanation:   "Never follow credentials requests from email; navigate to the site yourself.",
				SequenceOrder: 3,
			},
			{
				Question:      "What makes spear phishing harder to spot than bulk phishing?",
				Options:       `["It uses personalized details about the target","It always contains attachments","It only targets executives","It is sent at night"]`,
				CorrectAnswer: 0,
				Explanation:   "Personalization makes the message look legitimate.",
				SequenceOrder: 4,
			},
		}
		return tx.Create(&questions).Error
	})
}
