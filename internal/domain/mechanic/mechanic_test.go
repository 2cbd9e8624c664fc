package mechanic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMechanic(t *testing.T) {
	tests := []struct {
		name    string
		mName   string
		email   string
		wantErr string
	}{
		{name: "valid", mName: "Jo", email: "jo@x.com"},
		{name: "name at limit", mName: strings.Repeat("a", MaxNameLength), email: "jo@x.com"},
		{name: "missing name", mName: "  ", email: "jo@x.com", wantErr: "name is required"},
		{name: "name too long", mName: strings.Repeat("a", MaxNameLength+1), email: "jo@x.com", wantErr: "name exceeds"},
		{name: "missing email", mName: "Jo", email: "", wantErr: "email is required"},
		{name: "email too long", mName: "Jo", email: strings.Repeat("e", MaxEmailLength+1), wantErr: "email exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMechanic(tt.mName, tt.email)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, m.ID())
			assert.Equal(t, tt.mName, m.Name())
			assert.Equal(t, tt.email, m.Email())
			assert.Empty(t, m.TicketIDs())
		})
	}
}

func TestMechanic_SetID(t *testing.T) {
	m, err := NewMechanic("Jo", "jo@x.com")
	require.NoError(t, err)

	assert.Error(t, m.SetID(0))
	require.NoError(t, m.SetID(4))
	assert.Equal(t, uint(4), m.ID())
	assert.Error(t, m.SetID(5))
}

func TestMechanic_UpdateIsAllOrNothing(t *testing.T) {
	m, err := ReconstructMechanic(1, "Jo", "jo@x.com", nil)
	require.NoError(t, err)

	err = m.Update("Joanna", "")
	require.Error(t, err)
	assert.Equal(t, "Jo", m.Name())

	require.NoError(t, m.Update("Joanna", "joanna@x.com"))
	assert.Equal(t, "Joanna", m.Name())
	assert.Equal(t, "joanna@x.com", m.Email())
}

func TestReconstructMechanic(t *testing.T) {
	_, err := ReconstructMechanic(0, "Jo", "jo@x.com", nil)
	assert.Error(t, err)

	m, err := ReconstructMechanic(2, "Jo", "jo@x.com", []uint{9, 3, 9})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 9}, m.TicketIDs())

	ids := m.TicketIDs()
	ids[0] = 100
	assert.Equal(t, []uint{3, 9}, m.TicketIDs())
}
