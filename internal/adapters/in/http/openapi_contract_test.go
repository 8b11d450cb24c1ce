package http

import (
	"context"
	"strings"
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every route the server registers must be declared in api/openapi.yml,
// so the published contract cannot drift from the implementation.
func TestRegisteredRoutesAreDocumented(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../../api/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	e := echo.New()
	server := NewServer(
		commands.PlaceOrderCommandHandler{},
		commands.AddItemsCommandHandler{},
		commands.UpdateItemStatusCommandHandler{},
		commands.CreateMenuItemCommandHandler{},
		commands.CreateTableCommandHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetMenuQueryHandler{},
		queries.GetKitchenQueueQueryHandler{},
		queries.GetReportQueryHandler{},
	)
	server.RegisterRoutes(e, staticIdentity{})

	for _, route := range e.Routes() {
		if route.Path == "/health" || route.Path == "/" || strings.HasSuffix(route.Path, "*") {
			continue
		}

		docPath := strings.TrimPrefix(route.Path, "/api/v1")
		for _, segment := range strings.Split(docPath, "/") {
			if strings.HasPrefix(segment, ":") {
				docPath = strings.Replace(docPath, segment, "{"+segment[1:]+"}", 1)
			}
		}

		pathItem := doc.Paths.Find(docPath)
		require.NotNilf(t, pathItem, "route %s %s is missing from the contract", route.Method, route.Path)
		assert.NotNilf(t, pathItem.GetOperation(route.Method),
			"operation %s %s is missing from the contract", route.Method, route.Path)
	}
}
