package seed

import "transportpro/internal/domain/models"

func Users() []models.User {
	return []models.User{
		{
			ID:          "1",
			Username:    "admin",
			Email:       "admin@transportpro.com",
			FullName:    "System Administrator",
			Role:        models.RoleAdmin,
			Status:      models.UserActive,
			Department:  "IT Administration",
			Phone:       "+91 98765 43210",
			Permissions: []string{models.PermissionAll},
			CreatedAt:   ts("2024-01-01T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-20T10:30:00Z"),
		},
		{
			ID:          "2",
			Username:    "staff",
			Email:       "staff@transportpro.com",
			FullName:    "Transport Staff",
			Role:        models.RoleStaff,
			Status:      models.UserActive,
			Department:  "Operations",
			Phone:       "+91 98765 43211",
			Permissions: []string{"trips.view", "trips.create", "inventory.view"},
			CreatedAt:   ts("2024-01-01T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-20T09:15:00Z"),
		},
		{
			ID:          "3",
			Username:    "johndoe",
			Email:       "john.doe@transportpro.com",
			FullName:    "John Doe",
			Role:        models.RoleStaff,
			Status:      models.UserActive,
			Department:  "Logistics",
			Phone:       "+91 98765 43212",
			Permissions: []string{"trips.view", "trips.create"},
			CreatedAt:   ts("2024-01-05T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-19T16:45:00Z"),
		},
		{
			ID:          "4",
			Username:    "janesmith",
			Email:       "jane.smith@transportpro.com",
			FullName:    "Jane Smith",
			Role:        models.RoleAdmin,
			Status:      models.UserActive,
			Department:  "Management",
			Phone:       "+91 98765 43213",
			Permissions: []string{models.PermissionAll},
			CreatedAt:   ts("2024-01-10T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-20T08:20:00Z"),
		},
		{
			ID:          "5",
			Username:    "mikewilson",
			Email:       "mike.wilson@transportpro.com",
			FullName:    "Mike Wilson",
			Role:        models.RoleStaff,
			Status:      models.UserInactive,
			Department:  "Fleet Management",
			Phone:       "+91 98765 43214",
			Permissions: []string{"inventory.view", "inventory.create"},
			CreatedAt:   ts("2024-01-15T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-18T14:30:00Z"),
		},
		{
			ID:          "6",
			Username:    "sarahbrown",
			Email:       "sarah.brown@transportpro.com",
			FullName:    "Sarah Brown",
			Role:        models.RoleStaff,
			Status:      models.UserSuspended,
			Department:  "Finance",
			Phone:       "+91 98765 43215",
			Permissions: []string{"reports.view"},
			CreatedAt:   ts("2024-01-12T00:00:00Z"),
			LastLogin:   tsPtr("2024-01-17T11:00:00Z"),
		},
	}
}
