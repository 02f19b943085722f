package autoreply

import (
	"encoding/xml"
	"net/http"

	apphttp "leadgate_backend/internal/http"
	"leadgate_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// twiml is the minimal TwiML response document Twilio expects back from an
// inbound message webhook. xml.Marshal handles the escaping.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Module is the inbound-SMS auto-responder implementing http.Module.
type Module struct {
	script []ScriptRule
	log    *logger.Logger
}

// NewModule creates the auto-responder with the default script.
func NewModule(log *logger.Logger) *Module {
	return &Module{script: DefaultScript, log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "autoreply"
}

// RegisterRoutes mounts the webhook route.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/sms/inbound", m.handleInbound)
}

// handleInbound answers Twilio's form-encoded webhook with TwiML.
// POST /api/v1/sms/inbound
func (m *Module) handleInbound(c *gin.Context) {
	body := c.PostForm("Body")
	reply := Match(m.script, body)

	m.log.WithContext(c.Request.Context()).Debug("sms auto-reply",
		"from", c.PostForm("From"),
		"matched", reply != DefaultReply,
	)

	payload, err := xml.Marshal(twiml{Message: reply})
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Data(http.StatusOK, "text/xml", append([]byte(xml.Header), payload...))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
