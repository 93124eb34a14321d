package response

import (
	"io"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type ErrorBody struct {
	Error string      `json:"error"`
	Kind  apperr.Kind `json:"kind"`
}

var (
	marshalOptions   = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Error writes err as JSON with the status of its kind.
func Error(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), ErrorBody{
		Error: apperr.Message(err),
		Kind:  apperr.KindOf(err),
	})
}

// Proto writes m as JSON using the proto field names.
func Proto(c echo.Context, status int, m proto.Message) error {
	data, err := marshalOptions.Marshal(m)
	if err != nil {
		return Error(c, apperr.Wrap(apperr.KindInternal, err, "failed to encode response"))
	}
	return c.Blob(status, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// Bind decodes a JSON request body into m. An empty body leaves m untouched and
// malformed bodies are invalid arguments.
func Bind(c echo.Context, m proto.Message) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, err, "unreadable request")
	}
	if len(body) == 0 {
		return nil
	}
	if err := unmarshalOptions.Unmarshal(body, m); err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, err, "malformed request")
	}
	return nil
}
