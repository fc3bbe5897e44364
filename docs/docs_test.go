package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/client-api/docs"
)

type openAPI struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func TestReadDoc_RegistradoYConsistenteConSwaggerJSON(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var registered openAPI
	require.NoError(t, json.Unmarshal([]byte(doc), &registered))
	assert.Equal(t, "Client API", registered.Info.Title)

	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var file openAPI
	require.NoError(t, json.Unmarshal(raw, &file))

	assert.Equal(t, registered.Info, file.Info)
	require.Len(t, file.Paths, 3)
	for path, ops := range registered.Paths {
		require.Contains(t, file.Paths, path)
		for method := range ops {
			assert.Contains(t, file.Paths[path], method, path)
		}
	}
	assert.Contains(t, file.Definitions, "dto.ClientModel")
}
