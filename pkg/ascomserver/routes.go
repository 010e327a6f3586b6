package ascomserver

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stellarbridge/alpacaserver/internal/audit"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/dispatch"
	"github.com/stellarbridge/alpacaserver/internal/envelope"
	"github.com/stellarbridge/alpacaserver/internal/imaging"
	"github.com/stellarbridge/alpacaserver/internal/request"
	"github.com/stellarbridge/alpacaserver/internal/schema"
)

// imageBytesActions are the camera actions the ImageBytes binary transport
// applies to; every other action always answers in JSON regardless of the
// client's Accept header, per §4.8.6.
var imageBytesActions = map[string]bool{
	"imagearray":        true,
	"imagearrayvariant": true,
}

// DeviceRoutes registers the generic per-device-type Alpaca surface: one
// wildcard GET and PUT route that forwards every request into dispatcher,
// plus the binary ImageBytes fast path for camera image downloads.
type DeviceRoutes struct {
	server *Server
}

func NewDeviceRoutes(server *Server) *DeviceRoutes {
	return &DeviceRoutes{server: server}
}

func (d *DeviceRoutes) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api/v1")
	api.GET("/:devicetype/:devicenumber/:action", d.handle(schema.GET))
	api.PUT("/:devicetype/:devicenumber/:action", d.handle(schema.PUT))
}

func (d *DeviceRoutes) handle(verb schema.Verb) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceType := c.Param("devicetype")
		action := c.Param("action")

		deviceNumber, err := strconv.Atoi(c.Param("devicenumber"))
		if err != nil {
			c.String(http.StatusBadRequest, "device number must be an integer")
			return
		}

		raw, err := parseParams(c, verb)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		params, err := request.Parse(raw)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		if verb == schema.GET && deviceType == "camera" && imageBytesActions[action] &&
			imaging.WantsImageBytes(c.GetHeader("Accept")) {
			d.handleImageBytes(c, deviceNumber, params)
			return
		}

		started := time.Now()
		env, err := d.server.dispatcher.Dispatch(deviceType, deviceNumber, action, verb, params)
		d.audit(c, params, deviceType, deviceNumber, action, verb, started, env, err)
		if err != nil {
			writeDispatchError(c, err)
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

// handleImageBytes bypasses dispatch.Dispatch entirely: it looks the device
// up directly, asserts device.ImageBytesWriter, and streams the binary
// encoding straight to the response, skipping the nested-array JSON value
// the normal path would otherwise have to build only to discard.
func (d *DeviceRoutes) handleImageBytes(c *gin.Context, deviceNumber int, params *request.Parsed) {
	started := time.Now()
	entry, ok := d.server.registry.Lookup("camera", deviceNumber)
	if !ok {
		writeDispatchError(c, dispatch.ErrUnknownDevice{Type: "camera", Number: deviceNumber})
		return
	}
	if err := entry.Lock(); err != nil {
		writeDispatchError(c, dispatch.ErrPoisoned{Type: "camera", Number: deviceNumber})
		return
	}
	defer entry.Unlock()

	writer, ok := entry.Device.(device.ImageBytesWriter)
	if !ok {
		// Device doesn't support the fast path; fall back to the ordinary
		// dispatch/JSON route so the client still gets an answer.
		env, err := d.server.dispatcher.Dispatch("camera", deviceNumber, "imagearray", schema.GET, params)
		d.audit(c, params, "camera", deviceNumber, "imagearray", schema.GET, started, env, err)
		if err != nil {
			writeDispatchError(c, err)
			return
		}
		c.JSON(http.StatusOK, env)
		return
	}

	serverTxn := d.server.dispatcher.Counter.Next()
	var clientTxn uint32
	if params.ClientTransactionID != nil {
		clientTxn = *params.ClientTransactionID
	}

	c.Header("Content-Type", "application/imagebytes")
	c.Status(http.StatusOK)
	err := writer.WriteImageBytes(c.Writer, clientTxn, serverTxn)
	d.audit(c, params, "camera", deviceNumber, "imagearray", schema.GET, started, envelope.Envelope{
		ClientTransactionID: params.ClientTransactionID,
		ServerTransactionID: serverTxn,
	}, err)
}

func (d *DeviceRoutes) audit(c *gin.Context, params *request.Parsed, deviceType string, deviceNumber int, action string, verb schema.Verb, started time.Time, env envelope.Envelope, dispatchErr error) {
	if d.server.auditor == nil {
		return
	}
	var clientID int32
	if params.ClientID != nil {
		clientID = int32(*params.ClientID)
	}
	rec := audit.Record{
		TransactionID: audit.NewID(),
		ClientID:      clientID,
		DeviceType:    deviceType,
		DeviceNumber:  deviceNumber,
		Action:        action,
		Verb:          string(verb),
		StartedAt:     started,
		FinishedAt:    time.Now(),
		ErrorNumber:   env.ErrorNumber,
		ErrorMessage:  env.ErrorMessage,
	}
	if params.ClientTransactionID != nil {
		rec.ClientTransactionID = *params.ClientTransactionID
	}
	rec.ServerTransactionID = env.ServerTransactionID
	if dispatchErr != nil && rec.ErrorMessage == "" {
		rec.ErrorMessage = dispatchErr.Error()
	}
	d.server.auditor.Record(c.Request.Context(), rec)
}

// parseParams extracts the action's own parameters from the request, per
// §4.2: query string for GET, form body for PUT.
func parseParams(c *gin.Context, verb schema.Verb) (url.Values, error) {
	if verb == schema.GET {
		return c.Request.URL.Query(), nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.PostForm, nil
}

// writeDispatchError maps the transport-level errors Dispatch can return
// (unknown device type, unknown device, poisoned device) to their HTTP
// status codes, per §4.5 step 1 and §4.6. These are transport failures, not
// ASCOM envelope responses, so the body is plain text rather than JSON.
func writeDispatchError(c *gin.Context, err error) {
	var unknownType dispatch.ErrUnknownDeviceType
	var unknownDevice dispatch.ErrUnknownDevice
	var poisoned dispatch.ErrPoisoned
	switch {
	case errors.As(err, &unknownType):
		c.String(http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownDevice):
		c.String(http.StatusNotFound, err.Error())
	case errors.As(err, &poisoned):
		c.String(http.StatusInternalServerError, err.Error())
	default:
		c.String(http.StatusInternalServerError, err.Error())
	}
}
