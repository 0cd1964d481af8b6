package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railquery/railquery/pkg/api/routes"
	"github.com/railquery/railquery/pkg/gateway"
)

func SetupServer(listen string, client *gateway.Client) error {
	return createApp(client).Listen(listen)
}

func createApp(client *gateway.Client) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.ServicesRouter(group.Group("/services"), client)

	return webApp
}
