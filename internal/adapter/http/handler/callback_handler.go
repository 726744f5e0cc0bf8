package handler

import (
	"gear-client/internal/adapter/http/dto"
	"gear-client/internal/core/ports"
	"gear-client/pkg/apperror"
	"gear-client/pkg/logger"
	"gear-client/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderSignature carries the gateway's callback signature.
const HeaderSignature = "X-Signature"

// CallbackHandler receives order status callbacks from the gateway.
type CallbackHandler struct {
	callbackSvc ports.CallbackService
	log         zerolog.Logger
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(callbackSvc ports.CallbackService, log zerolog.Logger) *CallbackHandler {
	return &CallbackHandler{
		callbackSvc: callbackSvc,
		log:         logger.Component(log, "callback_handler"),
	}
}

// Handle serves the callback path. The signature covers the request URI as
// the gateway sent it, so the raw path and query are passed through.
// A redelivered callback is acknowledged with 200 so the gateway stops
// retrying.
func (h *CallbackHandler) Handle(c *gin.Context) {
	cb, err := h.callbackSvc.Handle(
		c.Request.Context(),
		c.Request.Method,
		rawRequestURI(c),
		c.GetHeader(HeaderSignature),
	)

	switch {
	case err == nil:
		response.OK(c, dto.NewCallbackAck(cb, dto.CallbackProcessed))
	case cb != nil && apperror.HasCode(err, "CB_001"):
		response.OK(c, dto.NewCallbackAck(cb, dto.CallbackDuplicate))
	default:
		if apperror.IsKind(err, apperror.KindSecurity) {
			h.log.Warn().Str("client_ip", c.ClientIP()).Msg("callback rejected: invalid signature")
		}
		response.Error(c, err)
	}
}

// rawRequestURI returns the request target exactly as it appeared on the
// request line. Requests built in-process may leave it empty.
func rawRequestURI(c *gin.Context) string {
	if uri := c.Request.RequestURI; uri != "" {
		return uri
	}
	return c.Request.URL.RequestURI()
}
