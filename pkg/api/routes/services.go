package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/railquery/railquery/pkg/gateway"
	"github.com/railquery/railquery/pkg/ldbsv"
)

func ServicesRouter(router fiber.Router, client *gateway.Client) {
	router.Get("/:rid", getService(client))
}

func getService(client *gateway.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Params("rid")
		detailed := c.QueryBool("detailed", false)

		details, err := client.ServiceDetails(c.Context(), rid)
		if err != nil {
			var unsupported ldbsv.UnsupportedServiceTypeError
			if errors.As(err, &unsupported) {
				c.SendStatus(fiber.StatusNotFound)
			} else {
				c.SendStatus(fiber.StatusBadGateway)
			}

			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		groups := []string{"basic"}
		if detailed {
			groups = append(groups, "detailed")
		}

		detailsReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, details)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce ServiceDetails",
			})
		}

		return c.JSON(detailsReduced)
	}
}
