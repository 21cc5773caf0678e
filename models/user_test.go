package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var u UserUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"birth_date":"1990-04-17"}`), &u))
	require.NotNil(t, u.BirthDate)
	assert.Equal(t, NewDate(1990, time.April, 17), *u.BirthDate)

	out, err := json.Marshal(User{BirthDate: u.BirthDate})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"birth_date":"1990-04-17"`)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"17.04.1990"`), &d))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2001, time.February, 3)

	tests := []struct {
		name    string
		src     any
		wantErr bool
	}{
		{name: "time", src: time.Date(2001, 2, 3, 15, 4, 5, 0, time.FixedZone("X", 3600))},
		{name: "string", src: "2001-02-03"},
		{name: "sqlite timestamp string", src: "2001-02-03 00:00:00+00:00"},
		{name: "bytes", src: []byte("2001-02-03")},
		{name: "unsupported", src: 42, wantErr: true},
		{name: "garbage", src: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2001, time.February, 3).Value()
	require.NoError(t, err)
	assert.Equal(t, "2001-02-03", v)
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	out, err := json.Marshal(User{Login: "alice", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
	assert.NotContains(t, string(out), "password")
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	name := "A"
	assert.True(t, UserUpdate{}.IsEmpty())
	assert.False(t, UserUpdate{FirstName: &name}.IsEmpty())
}

func TestPostUpdate_TagsPresence(t *testing.T) {
	var absent, cleared PostUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"tags":[]}`), &cleared))

	assert.Nil(t, absent.Tags)
	require.NotNil(t, cleared.Tags)
	assert.Empty(t, *cleared.Tags)
}
