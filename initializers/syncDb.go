package initializers

import (
	"log"

	"github.com/bentobaitos/bento-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{}, &models.DayCounter{})
	log.Println("Database synced successfully.")
}
