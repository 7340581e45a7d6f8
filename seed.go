package main

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasknest-server/models"
	"tasknest-server/utils"
)

// seedDatabase upserts the admin account and the service catalog so a
// fresh database is immediately usable. Safe to run on every startup.
func seedDatabase(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedServices(db)
}

func seedAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@tasknest.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	city := "Delhi"
	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@tasknest.com",
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
		City:         &city,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("Admin user seeded")
	return nil
}

func seedServices(db *gorm.DB) error {
	longDesc := func(s string) *string { return &s }

	services := []models.Service{
		{
			Name:        "Home-style Cooking",
			Type:        models.ServiceHomeCooking,
			Description: "Professional chef prepares daily meals at your home",
			LongDescription: longDesc("Our experienced chefs will visit your home to prepare fresh, " +
				"customized meals. Perfect for busy families wanting home-cooked food without the hassle."),
			StartingPrice: 150,
			Included: datatypes.NewJSONSlice([]string{
				"Professional chef visit",
				"Menu planning consultation",
				"Meal preparation",
				"Kitchen cleanup",
				"Food storage guidance",
			}),
			Excluded: datatypes.NewJSONSlice([]string{
				"Grocery shopping (available as add-on)",
				"Serving staff",
				"Tableware and cutlery",
			}),
		},
		{
			Name:        "Event Cooking",
			Type:        models.ServiceEventCooking,
			Description: "Private chef for 7-15 guest events",
			LongDescription: longDesc("Professional catering service for your private events. " +
				"We handle food preparation, service, and cleanup for intimate gatherings."),
			StartingPrice: 100,
			Included: datatypes.NewJSONSlice([]string{
				"Multi-course menu planning",
				"Professional chef and assistant",
				"Food preparation and cooking",
				"Plating and presentation",
				"Full cleanup service",
			}),
			Excluded: datatypes.NewJSONSlice([]string{
				"Tableware and decorations",
				"Beverages",
				"Venue rental",
			}),
		},
		{
			Name:        "Home Organization & Reset",
			Type:        models.ServiceHomeOrganization,
			Description: "Professional organizers transform your living space",
			LongDescription: longDesc("Expert organizing service to declutter, reorganize, and optimize your home. " +
				"We help you create a functional and beautiful living space."),
			StartingPrice: 200,
			Included: datatypes.NewJSONSlice([]string{
				"Initial consultation",
				"Space assessment",
				"Decluttering assistance",
				"Organization system design",
				"Implementation and setup",
				"Maintenance tips",
			}),
			Excluded: datatypes.NewJSONSlice([]string{
				"Storage containers (can be purchased)",
				"Furniture or fixtures",
				"Waste disposal fees",
			}),
		},
		{
			Name:        "Seasonal / Event Concierge",
			Type:        models.ServiceSeasonalConcierge,
			Description: "Complete event planning and coordination",
			LongDescription: longDesc("Full concierge service for seasonal celebrations and special events. " +
				"From planning to execution, we handle every detail."),
			StartingPrice: 500,
			Included: datatypes.NewJSONSlice([]string{
				"Event planning consultation",
				"Vendor coordination",
				"Timeline management",
				"Day-of coordination",
				"Setup and breakdown",
			}),
			Excluded: datatypes.NewJSONSlice([]string{
				"Vendor fees",
				"Venue costs",
				"Decorations and supplies",
			}),
		},
		{
			Name:        "Custom Cooking Card",
			Type:        models.ServiceCustomCooking,
			Description: "Meal prep and specialized diet cooking",
			LongDescription: longDesc("Customized meal preparation tailored to your dietary needs. " +
				"Whether keto, vegan, or specific health requirements, we prepare meals perfectly suited to you."),
			StartingPrice: 100,
			Included: datatypes.NewJSONSlice([]string{
				"Nutritional consultation",
				"Custom menu planning",
				"Special diet expertise",
				"Meal preparation",
				"Portion control and labeling",
				"Storage instructions",
			}),
			Excluded: datatypes.NewJSONSlice([]string{
				"Specialty ingredients (charged separately)",
				"Nutritionist consultation",
				"Delivery service",
			}),
		},
	}

	for _, service := range services {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "long_description", "starting_price", "included", "excluded",
			}),
		}).Create(&service).Error
		if err != nil {
			return err
		}
	}

	log.Info().Int("count", len(services)).Msg("Service catalog seeded")
	return nil
}
