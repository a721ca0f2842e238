package tuid

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tuid/internal/entropy"
)

// stubEntropy fixes the random source for the duration of a test.
func stubEntropy(t *testing.T, fill byte) {
	t.Helper()
	previous := entropy.ReadFunc
	entropy.ReadFunc = func(b []byte) error {
		for i := range b {
			b[i] = fill
		}
		return nil
	}
	t.Cleanup(func() { entropy.ReadFunc = previous })
}

func TestNew_Layout(t *testing.T) {
	stubEntropy(t, 0xff)

	id := New(userBusiness)
	assert.EqualValues(t, 0x8f, id[6], "version nibble must be 8, low nibble random")
	assert.EqualValues(t, 0xbf, id[8], "variant bits must be 10, remaining six bits random")
	assert.EqualValues(t, userBusiness.Tag(), id[15])
	for _, i := range []int{0, 1, 2, 3, 4, 5, 7, 9, 10, 11, 12, 13, 14} {
		assert.EqualValues(t, 0xff, id[i], "byte %d must stay random", i)
	}
}

func TestNew_LayoutInvariants(t *testing.T) {
	// Invariants hold for every kind and every random draw.
	for _, kind := range []userType{userRetail, userBusiness, userOrganization} {
		for i := 0; i < 64; i++ {
			id := New(kind)
			assert.EqualValues(t, 8, id[6]>>4)
			assert.EqualValues(t, 0x80, id[8]&0xc0)
			assert.EqualValues(t, kind.Tag(), id[15])
		}
	}
}

func TestID_KindRoundTrip(t *testing.T) {
	for _, kind := range []userType{userRetail, userBusiness, userOrganization} {
		id := New(kind)
		decoded, err := id.Kind()
		assert.Nil(t, err)
		assert.Equal(t, kind, decoded)
		assert.Equal(t, kind, id.MustKind())
	}
}

func TestID_BinaryRoundTrip(t *testing.T) {
	id := New(userOrganization)
	raw := id.Bytes()
	restored, err := FromBytes[userType](raw[:])
	assert.Nil(t, err)
	assert.Equal(t, id, restored)
}

func TestFromUUID_UnknownTag(t *testing.T) {
	var u uuid.UUID
	u[15] = 99
	_, err := FromUUID[userType](u)
	assert.ErrorIs(t, err, ErrUnknownTag)
	assert.ErrorContains(t, err, "99")
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr error
		expectTag uint8
	}{
		{
			name:      "valid retail",
			input:     "550e8400-e29b-8d14-a716-446655440000",
			expectTag: 0,
		},
		{
			name:      "valid org",
			input:     "550e8400-e29b-8d14-a716-446655440002",
			expectTag: 2,
		},
		{
			name:      "unknown tag",
			input:     "550e8400-e29b-8d14-a716-4466554400ff",
			expectErr: ErrUnknownTag,
		},
		{
			name:      "malformed hex",
			input:     "550e8400-e29b-8d14-a716-44665544000g",
			expectErr: ErrInvalidUUID,
		},
		{
			name:      "wrong length",
			input:     "550e8400",
			expectErr: ErrInvalidUUID,
		},
		{
			name:      "urn form rejected",
			input:     "urn:uuid:550e8400-e29b-8d14-a716-446655440000",
			expectErr: ErrInvalidUUID,
		},
	}

	for _, tc := range testCases {
		id, err := ParseID[userType](tc.input)
		if tc.expectErr != nil {
			assert.ErrorIs(t, err, tc.expectErr, tc.name)
			continue
		}
		if !assert.Nil(t, err, tc.name) {
			continue
		}
		assert.EqualValues(t, tc.expectTag, id.Tag(), tc.name)
		assert.Equal(t, tc.input, id.String(), tc.name)
	}
}

func TestID_Compare(t *testing.T) {
	var low, high ID[userType]
	low[15] = 0
	high[0] = 1
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.True(t, ID[userType]{}.IsZero())
	assert.False(t, New(userRetail).IsZero())
}

func TestID_JSONRoundTrip(t *testing.T) {
	type record struct {
		ID ID[userType] `json:"id"`
	}
	original := record{ID: New(userBusiness)}
	data, err := json.Marshal(original)
	assert.Nil(t, err)
	assert.Contains(t, string(data), original.ID.String())

	var restored record
	assert.Nil(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestID_UnmarshalText_ValidatesTag(t *testing.T) {
	var id ID[userType]
	err := id.UnmarshalText([]byte("550e8400-e29b-8d14-a716-4466554400ff"))
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestID_BinaryCodec(t *testing.T) {
	original := New(userRetail)
	data, err := original.MarshalBinary()
	assert.Nil(t, err)
	assert.Len(t, data, 16)

	var restored ID[userType]
	assert.Nil(t, restored.UnmarshalBinary(data))
	assert.Equal(t, original, restored)

	assert.NotNil(t, restored.UnmarshalBinary(data[:8]))
}
