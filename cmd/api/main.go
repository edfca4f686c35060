package main

import (
	"appraisal_booking/internal/cmd"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Appraisal Booking API
// @version         1.0
// @description     Quotes, scheduling, bookings and the admin back office for an appraisal and photography business.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cmd.Execute()
}
