package game

import (
	"testing"

	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSalt = "00112233445566778899aabbccddeeff"

func TestCanonicalText(t *testing.T) {
	assert.Equal(t, "cafe", CanonicalText("  Café  "))
	assert.Equal(t, "cafe", CanonicalText("cafe"))
	assert.Equal(t, "la vie en rose", CanonicalText("La  Vie   en Rose"))
	assert.Equal(t, "montmartre", CanonicalText("MONTMARTRE"))
	assert.Equal(t, "", CanonicalText("   "))
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-06-15", "2020-06-15"},
		{"2020-06-15T10:30:00Z", "2020-06-15"},
		{"15/06/2020", "2020-06-15"},
		{"15 June 2020", "2020-06-15"},
		{"June 15, 2020", "2020-06-15"},
		{"Jun 15, 2020", "2020-06-15"},
		{"2020.06.15", "2020-06-15"},
		{"  2020-06-15  ", "2020-06-15"},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "2020-13-45", "15th of June"} {
		_, err := NormalizeDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestPuzzleSolution(t *testing.T) {
	assert.Equal(t, "1,2,3,4", PuzzleSolution(2))
	assert.Equal(t, "1,2,3,4,5,6,7,8,9", PuzzleSolution(3))
}

func TestCanonicalPermutation(t *testing.T) {
	assert.Equal(t, "1,2,3,4", CanonicalPermutation([]int{1, 2, 3, 4}))
	assert.Equal(t, "3,1,2", CanonicalPermutation([]int{3, 1, 2}))
	assert.Equal(t, "", CanonicalPermutation(nil))
}

func TestCanonicalAnswer(t *testing.T) {
	got, err := CanonicalAnswer(shared.FactTypeText, " Café ")
	require.NoError(t, err)
	assert.Equal(t, "cafe", got)

	got, err = CanonicalAnswer(shared.FactTypePlace, "MONTMARTRE")
	require.NoError(t, err)
	assert.Equal(t, "montmartre", got)

	got, err = CanonicalAnswer(shared.FactTypeDate, "15/06/2020")
	require.NoError(t, err)
	assert.Equal(t, "2020-06-15", got)

	got, err = CanonicalAnswer(shared.FactTypePhoto, " 1, 2,3 ,4")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4", got)

	_, err = CanonicalAnswer(shared.FactTypePhoto, "1,two,3")
	assert.Error(t, err)

	_, err = CanonicalAnswer("riddle", "anything")
	assert.Error(t, err)
}

func TestCommitKnownVectors(t *testing.T) {
	assert.Equal(t,
		"b7b760c74c88a52d191fbc7fdcd8b73bd05ac2670fe9daf19855efc83e7ef182",
		Commit(testSalt, "cafe"))
	assert.Equal(t,
		"203845c40b33235a19b9373fca02fa06d9068d327d436576ed490286d4da515d",
		Commit(testSalt, "2020-06-15"))
}

func TestCommitSaltSeparation(t *testing.T) {
	assert.NotEqual(t, Commit("aa", "cafe"), Commit("bb", "cafe"))
	assert.NotEqual(t, Commit(testSalt, "cafe"), Commit(testSalt, "care"))
}

func TestVerify(t *testing.T) {
	commitment := Commit(testSalt, "cafe")

	assert.True(t, Verify(testSalt, commitment, shared.FactTypeText, "cafe"))
	assert.True(t, Verify(testSalt, commitment, shared.FactTypeText, "  Café "))
	assert.False(t, Verify(testSalt, commitment, shared.FactTypeText, "tea"))
	assert.False(t, Verify("ffffffffffffffffffffffffffffffff", commitment, shared.FactTypeText, "cafe"))
}

func TestVerifyDate(t *testing.T) {
	commitment := Commit(testSalt, "2020-06-15")

	assert.True(t, Verify(testSalt, commitment, shared.FactTypeDate, "15/06/2020"))
	assert.True(t, Verify(testSalt, commitment, shared.FactTypeDate, "2020-06-15T08:00:00Z"))
	assert.False(t, Verify(testSalt, commitment, shared.FactTypeDate, "2020-06-16"))
	assert.False(t, Verify(testSalt, commitment, shared.FactTypeDate, "junk"))
}

func TestVerifyPhoto(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	commitment := Commit(salt, PuzzleSolution(3))

	assert.True(t, Verify(salt, commitment, shared.FactTypePhoto, "1,2,3,4,5,6,7,8,9"))
	assert.True(t, Verify(salt, commitment, shared.FactTypePhoto, "1, 2, 3, 4, 5, 6, 7, 8, 9"))
	assert.False(t, Verify(salt, commitment, shared.FactTypePhoto, "9,8,7,6,5,4,3,2,1"))
}

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
