package main

import (
	_ "mutawazi_proposals/docs"
	"mutawazi_proposals/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mutawazi Financial Proposal API
// @version         2.0
// @description     Financial proposal generation: deliverable cash-flow analysis, payment-term splits and AI price justification.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
