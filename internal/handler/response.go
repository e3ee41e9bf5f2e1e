package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Response is the unified JSON envelope for the API routes.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse returns a successful response.
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// BadRequestResponse returns a 400 with a user-visible message.
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, Response{
		Code:    "INVALID_INPUT",
		Message: message,
	})
}

// NotTrainedResponse tells the caller to run training before predicting.
func NotTrainedResponse(c *app.RequestContext) {
	c.JSON(consts.StatusServiceUnavailable, Response{
		Code:    "MODEL_NOT_TRAINED",
		Message: "no trained model is available, run the trainer first",
	})
}

// InternalErrorResponse returns a 500 without leaking details.
func InternalErrorResponse(c *app.RequestContext) {
	c.JSON(consts.StatusInternalServerError, Response{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	})
}
