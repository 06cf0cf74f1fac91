package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuality_JSON(t *testing.T) {
	b, err := json.Marshal([]Quality{QualityOf(101), QualityOf(0), NoQuality(NoModelMatch)})
	require.NoError(t, err)
	assert.Equal(t, `[101,0,"No Model Match"]`, string(b))

	var back []Quality
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 3)
	s, ok := back[1].Score()
	assert.True(t, ok)
	assert.Equal(t, 0, s)
	_, ok = back[2].Score()
	assert.False(t, ok)
	assert.Equal(t, NoModelMatch, back[2].String())
}

func TestQualityFrom(t *testing.T) {
	zero := 0
	assert.Equal(t, "0", QualityFrom(&zero, NoPartMatch).String())
	assert.Equal(t, NoPartMatch, QualityFrom(nil, NoPartMatch).String())
}

func TestTier(t *testing.T) {
	for _, tier := range []Tier{TierExact, TierClean, TierPartial, TierPartialForward, TierPartialReverse, TierSubstring} {
		b, err := json.Marshal(tier)
		require.NoError(t, err)
		var back Tier
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, tier, back)
	}
	assert.Equal(t, "PARTIAL_FWD", TierPartialForward.String())
	assert.Equal(t, "Tier(42)", Tier(42).String())
	_, err := ParseTier("FUZZY")
	assert.Error(t, err)
}

func TestResult(t *testing.T) {
	var r Result
	assert.False(t, r.Matched())
	assert.Empty(t, r.Target())
	assert.Empty(t, r.Name())

	id, name := "PT_CAT_1", "AC100"
	r = Result{TargetKey: &id, TargetName: &name}
	assert.True(t, r.Matched())
	assert.Equal(t, "PT_CAT_1", r.Target())
	assert.Equal(t, "AC100", r.Name())
}

func TestReferenceItem_IsModel(t *testing.T) {
	assert.True(t, ReferenceItem{ReferenceID: "PT_CAT_12"}.IsModel(DefaultCategoryTag))
	assert.True(t, ReferenceItem{ReferenceID: "X-PT_CAT"}.IsModel(DefaultCategoryTag))
	assert.False(t, ReferenceItem{ReferenceID: "pt_cat_12"}.IsModel(DefaultCategoryTag))
	assert.False(t, ReferenceItem{ReferenceID: "PT_CAT_12"}.IsModel(""))
}

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("items", "primaryId", []string{"id", "name"})
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Equal(t, `items: required column "primaryId" not found (have: id, name)`, err.Error())
	assert.Contains(t, NewMissingColumnError("items", "primaryId", nil).Error(), "no header row")
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "Acme|AC100", PairKey{Manufacturer: "Acme", Value: "AC100"}.String())
}

func TestReport_JSONKeys(t *testing.T) {
	b, err := json.Marshal(Report{ManufacturerCodes: []string{"ACM"}, PartFromModel: true})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &keys))
	assert.Contains(t, keys, "manufacturerCodes")
	assert.Contains(t, keys, "partFromModel")
	assert.NotContains(t, string(b), "manufacturer_codes")
	assert.NotContains(t, string(b), "part_from_model")
	assert.JSONEq(t, `["ACM"]`, string(keys["manufacturerCodes"]))
}
