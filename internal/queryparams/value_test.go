package queryparams

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		kind ValueKind
		want string
	}{
		{"nil", nil, KindAbsent, ""},
		{"string", "x", KindText, "x"},
		{"true", true, KindBool, "true"},
		{"false", false, KindBool, "false"},
		{"bytes", []byte("b"), KindText, "b"},
		{"int", 42, KindOther, "42"},
		{"int64", int64(-7), KindOther, "-7"},
		{"uint8", uint8(255), KindOther, "255"},
		{"float", 1.5, KindOther, "1.5"},
		{"whole float", float64(2), KindOther, "2"},
		{"stringer", time.Second, KindOther, "1s"},
		{"value", Text("v"), KindText, "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestValueOfRejects(t *testing.T) {
	for _, in := range []interface{}{struct{}{}, map[string]interface{}{}, []byte{0xff}} {
		_, err := ValueOf(in)
		assert.True(t, errors.Is(err, urls.ErrMalformedInput), "%T", in)
	}
}

func TestValuesOf(t *testing.T) {
	values, isList, err := ValuesOf([]interface{}{"a", true})
	require.NoError(t, err)
	assert.True(t, isList)
	assert.Equal(t, []Value{Text("a"), Bool(true)}, values)

	values, isList, err = ValuesOf("x")
	require.NoError(t, err)
	assert.False(t, isList)
	assert.Equal(t, []Value{Text("x")}, values)

	_, _, err = ValuesOf([]interface{}{"a", struct{}{}})
	assert.Error(t, err)
}
