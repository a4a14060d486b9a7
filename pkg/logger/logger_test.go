package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEmiteJSONConService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Service: "taller-api", Env: "production", Level: "info", Writer: &buf})

	log.Info().Str("ruta", "/health").Msg("ping")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "taller-api", line["service"])
	assert.Equal(t, "ping", line["message"])
	assert.Equal(t, "/health", line["ruta"])
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Service: "taller-api", Env: "production", Level: "loquesea", Writer: &buf})

	log.Debug().Msg("no debería salir")
	assert.Empty(t, buf.Bytes())

	log.Info().Msg("sí sale")
	assert.NotEmpty(t, buf.Bytes())
}

func TestWithComponent_AgregaElCampo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Service: "taller-api", Env: "production", Writer: &buf})

	log.WithComponent("audit").Warn().Msg("sin conexión")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "audit", line["component"])
}
