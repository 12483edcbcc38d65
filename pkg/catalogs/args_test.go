package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/redlist/pkg/catalogs"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value catalogs.Value
		want  string
		kind  catalogs.Kind
	}{
		{"string", catalogs.StringValue("Panthera"), "Panthera", catalogs.KindString},
		{"int", catalogs.IntValue(22823), "22823", catalogs.KindInt},
		{"negative int", catalogs.IntValue(-1), "-1", catalogs.KindInt},
		{"true", catalogs.BoolValue(true), "true", catalogs.KindBool},
		{"false", catalogs.BoolValue(false), "false", catalogs.KindBool},
		{"zero value", catalogs.Value{}, "", catalogs.KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
			assert.Equal(t, tt.kind, tt.value.Kind())
		})
	}
}

func TestArgs(t *testing.T) {
	var a catalogs.Args
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Has("x"))

	a.SetString("b", "1").SetInt("a", 2).SetString("b", "3")
	assert.Equal(t, []string{"b", "a"}, a.Keys())
	v, ok := a.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v.String())

	var nilArgs *catalogs.Args
	assert.Nil(t, nilArgs.Keys())
	assert.Equal(t, 0, nilArgs.Len())
	assert.False(t, nilArgs.Has("x"))
}

func TestNewArgsSorted(t *testing.T) {
	a := catalogs.NewArgs(map[string]string{"z": "1", "a": "2", "m": "3"})
	assert.Equal(t, []string{"a", "m", "z"}, a.Keys())
}
