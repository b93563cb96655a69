package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawRequestInput_Decode(t *testing.T) {
	var in WithdrawRequestInput
	body := `{"chain":"bitcoin","address":"1ABC","amount":2.50,"publicCode":"XYZ","requirementConfirmed":true}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Equal(t, "bitcoin", *in.Chain.Ptr())
	assert.Equal(t, "2.50", *in.Amount.Ptr())
	assert.True(t, *in.RequirementConfirmed.Ptr())
}

func TestWithdrawRequestInput_AbsentAndNull(t *testing.T) {
	var in WithdrawRequestInput
	require.NoError(t, json.Unmarshal([]byte(`{"address":null}`), &in))

	assert.Nil(t, in.Chain.Ptr())
	assert.Nil(t, in.Address.Ptr())
	assert.Nil(t, in.RequirementConfirmed.Ptr())
}

func TestFlag_OnlyLiteralTrue(t *testing.T) {
	for body, want := range map[string]bool{
		`{"requirementConfirmed":true}`:    true,
		`{"requirementConfirmed":false}`:   false,
		`{"requirementConfirmed":"true"}`:  false,
		`{"requirementConfirmed":1}`:       false,
		`{"requirementConfirmed":null}`:    false,
		`{"requirementConfirmed":{"a":1}}`: false,
	} {
		var in WithdrawRequestInput
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)
		got := in.RequirementConfirmed.Ptr()
		if got == nil {
			assert.False(t, want, body)
			continue
		}
		assert.Equal(t, want, *got, body)
	}
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var in WithdrawRequestInput
	assert.Error(t, json.Unmarshal([]byte(`{"address":{"x":1}}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"address":true}`), &in))
}
