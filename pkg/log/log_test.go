package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	original := logrus.StandardLogger().Out
	defer logrus.SetOutput(original)

	var buf bytes.Buffer
	logrus.SetOutput(&buf)

	Configure("debug")

	L.WithFields(Fields{
		"unit_id": "u1",
		"ignored": "x",
	}).Info("mensagem")

	assert.Contains(t, buf.String(), "unit_id=u1")
	assert.NotContains(t, buf.String(), "ignored")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
}
