package admin

import (
	"strconv"

	"personel-backend/internal/database"
	"personel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeResponse struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt string          `json:"created_at"`
}

func toEmployeeResponse(u *models.User) EmployeeResponse {
	return EmployeeResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.User
		if err := database.DB.Where("role = ?", models.RoleEmployee).Order("id").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}

		res := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			res = append(res, toEmployeeResponse(&e))
		}

		return c.JSON(res)
	}
}

// DeleteEmployeeHandler sadece employee rolündeki kayıtları siler.
// Admin id'si verilirse kayıt bulunamamış sayılır, admin asla silinmez.
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var employee models.User
		if err := database.DB.First(&employee, "id = ? AND role = ?", id, models.RoleEmployee).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		if err := database.DB.Delete(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan silinemedi")
		}

		return c.JSON(fiber.Map{"msg": "Çalışan silindi"})
	}
}

// SuspendEmployeeHandler ?suspend=true askıya alır, ?suspend=false geri açar.
// Rol kapsamı silme ile aynı: admin kaydı üzerinde çalışmaz.
func SuspendEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		suspendParam := c.Query("suspend")
		if suspendParam == "" {
			return fiber.NewError(fiber.StatusBadRequest, "suspend parametresi zorunlu")
		}
		suspend, err := strconv.ParseBool(suspendParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "suspend true veya false olmalı")
		}

		var employee models.User
		if err := database.DB.First(&employee, "id = ? AND role = ?", id, models.RoleEmployee).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		employee.IsActive = !suspend
		if err := database.DB.Save(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan güncellenemedi")
		}

		return c.JSON(toEmployeeResponse(&employee))
	}
}
