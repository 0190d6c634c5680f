package main

import (
	"log"

	"echoverse-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "ENTRY_CREATED",
			DisplayName: "Entry Saved",
			Template:    "Your entry \"{title}\" was saved and queued for analysis",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "ENTRY_ANALYZED",
			DisplayName: "Entry Analyzed",
			Template:    "Analysis finished for \"{title}\": mostly {primary_emotion}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "INSIGHT_READY",
			DisplayName: "New Insight",
			Template:    "Your {insight_type} insight is ready to read",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "USER_REGISTERED",
			DisplayName: "New User Registration",
			Template:    "New user registered: {email} ({user_id})",
			TargetType:  "ADMIN",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded successfully.")
}
