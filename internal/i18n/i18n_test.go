package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bluelatex/blue-web/internal/service"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New()
	require.NoError(t, err)
	return tr
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"fr-FR,fr;q=0.9,en;q=0.8", language.French},
		{"fr-CH", language.French},
		{"de-DE,en;q=0.5", language.English},
		{"ja", language.English},
		{"not a header;;;", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.header))
		})
	}
}

func TestTranslator_Translate(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Wrong username and/or password.", tr.Translate(language.English, "_Login_Wrong_username_and_or_password_"))
	assert.Equal(t, "Identifiant et/ou mot de passe incorrect.", tr.Translate(language.French, "_Login_Wrong_username_and_or_password_"))
	assert.Equal(t, "Papers", tr.Translate(language.German, "Papers"))
}

func TestTranslator_UnknownKeyRendersAsKey(t *testing.T) {
	tr := newTranslator(t)

	assert.False(t, tr.Has("_Nope_"))
	assert.Equal(t, "_Nope_", tr.Translate(language.French, "_Nope_"))
}

func TestCatalog_CoversEveryMessageKey(t *testing.T) {
	tr := newTranslator(t)

	ops := []service.Operation{
		service.OpListPapers, service.OpDeletePaper, service.OpNewPaper, service.OpLogout,
		service.OpLogin, service.OpRegister, service.OpResetRequest, service.OpResetPassword,
		service.OpProfile, service.OpViewPaper, service.OpEditPaper,
	}
	for _, op := range ops {
		table, ok := service.StatusMessagesFor(op)
		require.True(t, ok, op)
		assert.True(t, tr.Has(table.Default), table.Default)
		for _, key := range table.ByStatus {
			assert.True(t, tr.Has(key), key)
		}
	}
	for _, key := range []string{
		service.InfoRegistered, service.InfoResetRequested,
		service.InfoPasswordChanged, service.InfoPaperSaved,
	} {
		assert.True(t, tr.Has(key), key)
	}
}
