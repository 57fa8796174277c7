package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	t.Run("presence-only values", func(t *testing.T) {
		t.Parallel()
		tags := SimpleTags("welcome", "onboarding")
		require.Len(t, tags, 2)
		require.Equal(t, struct{}{}, tags["welcome"])
		require.Equal(t, struct{}{}, tags["onboarding"])
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		tags := SimpleTags()
		require.NotNil(t, tags)
		require.Empty(t, tags)
	})

	t.Run("mixed with key-value tags", func(t *testing.T) {
		t.Parallel()
		tags := SimpleTags("newsletter")
		tags["campaign"] = "holiday-2024"
		require.ElementsMatch(t, []string{"newsletter", "campaign"}, tags.TagNames())
	})
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "John Doe <john@example.com>", Recipient("John Doe", "john@example.com"))
	require.Equal(t, "john@example.com", Recipient("", "john@example.com"))
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		name    string
		address string
	}{
		{input: "John Doe <john@example.com>", name: "John Doe", address: "john@example.com"},
		{input: `"Doe, John" <john@example.com>`, name: "Doe, John", address: "john@example.com"},
		{input: "john@example.com", name: "", address: "john@example.com"},
		{input: "not an address", name: "", address: "not an address"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			name, address := ParseAddress(tt.input)
			require.Equal(t, tt.name, name)
			require.Equal(t, tt.address, address)
		})
	}
}

func TestRecipient_RoundTripsThroughParseAddress(t *testing.T) {
	t.Parallel()

	name, address := ParseAddress(Recipient("Team", "team@example.com"))
	require.Equal(t, "Team", name)
	require.Equal(t, "team@example.com", address)
}

func TestAttachment_Inline(t *testing.T) {
	t.Parallel()

	require.True(t, Attachment{Filename: "logo.png", ContentID: "logo"}.Inline())
	require.False(t, Attachment{Filename: "report.pdf"}.Inline())
}
