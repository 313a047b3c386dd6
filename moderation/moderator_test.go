package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censors_Plain_Words(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"spam", "scam"}, '*')
	req.NoError(err)

	censored, found := moderator.Censor("this is spam and a scam")
	req.Equal("this is **** and a ****", censored)
	req.Len(found, 2)
}

func TestModerator_Censors_Leet_Speak(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"spam"}, '*')
	req.NoError(err)

	censored, found := moderator.Censor("buy 5p4m now")
	req.Equal("buy **** now", censored)
	req.Equal([]string{"spam"}, found)
}

func TestModerator_Clean_Content_Untouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"spam"}, '*')
	req.NoError(err)

	original := "a perfectly fine message"
	censored, found := moderator.Censor(original)
	req.Equal(original, censored)
	req.Empty(found)
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)
	req.Equal("en", DetectLanguage("the quick brown fox jumps over the lazy dog"))
	req.Equal("fr", DetectLanguage("bonjour tout le monde, comment allez-vous aujourd'hui"))
}
