package ascomserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellarbridge/alpacaserver/internal/envelope"
)

// ManagementAPI contains handlers for ASCOM Alpaca management endpoints.
// These endpoints provide server-level information and are not device-specific.
type ManagementAPI struct {
	server *Server
}

func NewManagementAPI(server *Server) *ManagementAPI {
	return &ManagementAPI{server: server}
}

// RegisterRoutes registers all management API routes with the Gin router.
func (m *ManagementAPI) RegisterRoutes(router gin.IRouter) {
	management := router.Group("/management")
	{
		management.GET("/apiversions", m.handleAPIVersions)

		v1 := management.Group("/v1")
		{
			v1.GET("/description", m.handleDescription)
			v1.GET("/configureddevices", m.handleConfiguredDevices)
		}
	}
}

func (m *ManagementAPI) handleAPIVersions(c *gin.Context) {
	c.JSON(http.StatusOK, envelope.Envelope{
		ServerTransactionID: m.server.dispatcher.Counter.Next(),
		Fields:              envelope.Scalar([]int{AlpacaAPIVersion}),
	})
}

func (m *ManagementAPI) handleDescription(c *gin.Context) {
	description := map[string]any{
		"ServerName":          m.server.config.Server.ServerName,
		"Manufacturer":        m.server.config.Server.Manufacturer,
		"ManufacturerVersion": m.server.config.Server.ManufacturerVersion,
		"Location":            m.server.config.Server.Location,
	}

	c.JSON(http.StatusOK, envelope.Envelope{
		ServerTransactionID: m.server.dispatcher.Counter.Next(),
		Fields:              envelope.Scalar(description),
	})
}

func (m *ManagementAPI) handleConfiguredDevices(c *gin.Context) {
	entries := m.server.registry.All()
	devices := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		devices = append(devices, map[string]any{
			"DeviceName":   e.Device.Name(),
			"DeviceType":   e.Type,
			"DeviceNumber": e.Number,
			"UniqueID":     deviceUniqueID(e.Type, e.Number),
		})
	}

	c.JSON(http.StatusOK, envelope.Envelope{
		ServerTransactionID: m.server.dispatcher.Counter.Next(),
		Fields:              envelope.Scalar(devices),
	})
}

// deviceUniqueID derives a stable identifier from the device's (type,
// number) key rather than a randomly generated UUID, so it survives server
// restarts without any persisted state.
func deviceUniqueID(deviceType string, deviceNumber int) string {
	return "alpacaserver-" + DeviceKey(deviceType, deviceNumber)
}
