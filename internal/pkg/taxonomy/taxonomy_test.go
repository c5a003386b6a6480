package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetGroupsRows(t *testing.T) {
	sheet := "a,b,c,d,CASTE,SUBCASTE\n" +
		",,,,BRAHMIN,AYYANGAR\n" +
		",,,,,IYYAR\n" +
		",,,,GOUNDER,\n" +
		",,,,KONAR,VELLALAR\n" +
		",,,,,YADAV\n"

	table := ParseSheet(sheet)

	require.Len(t, table, 3)
	assert.Equal(t, []string{"AYYANGAR", "IYYAR"}, table["BRAHMIN"])
	assert.Equal(t, []string{SubCasteNone}, table["GOUNDER"])
	assert.Equal(t, []string{"VELLALAR", "YADAV"}, table["KONAR"])
}

func TestParseSheetSkipsOrphanContinuations(t *testing.T) {
	// Continuation rows before any named caste have no group to join.
	sheet := "a,b,c,d,CASTE,SUBCASTE\n" +
		",,,,,ORPHAN\n" +
		",,,,NADAR,GRAMANI\n"

	table := ParseSheet(sheet)

	require.Len(t, table, 1)
	assert.Equal(t, []string{"GRAMANI"}, table["NADAR"])
}

func TestParseSheetTrimsAndIgnoresShortRows(t *testing.T) {
	sheet := "header\n" +
		"short,row\n" +
		",,,, BRAHMIN , AYYAR \n"

	table := ParseSheet(sheet)

	require.Len(t, table, 1)
	assert.Equal(t, []string{"AYYAR"}, table["BRAHMIN"])
}

func TestHasCorruptKeys(t *testing.T) {
	assert.True(t, hasCorruptKeys(Table{"BRAHMIN;GOUNDER": {"X"}}))
	assert.True(t, hasCorruptKeys(Table{"ROW300": {"X"}}))
	assert.True(t, hasCorruptKeys(Table{"CASTE0": {"X"}}))
	assert.False(t, hasCorruptKeys(Table{"BRAHMIN": {"X"}}))
}

func TestServiceStartsWithFallback(t *testing.T) {
	s := New("")

	assert.True(t, s.IsValid("BRAHMIN"))
	assert.True(t, s.IsValid("MUSLIM"))
	assert.False(t, s.IsValid("UNKNOWN"))
	assert.Equal(t, []string{"AADISAIVER", "AYAN", "AYYANGAR", "IYYAR"}, s.SubCastes("BRAHMIN"))
	assert.Equal(t, []string{SubCasteNone}, s.SubCastes("GOUNDER"))
}

func TestSubCastesUnknownCasteGetsSentinel(t *testing.T) {
	s := New("")

	assert.Equal(t, []string{SubCasteNone}, s.SubCastes("UNKNOWN"))
}

func TestSubCastesReturnsCopy(t *testing.T) {
	s := New("")

	first := s.SubCastes("BRAHMIN")
	first[0] = "MUTATED"

	assert.Equal(t, "AADISAIVER", s.SubCastes("BRAHMIN")[0])
}

func TestCastesSorted(t *testing.T) {
	s := New("")

	castes := s.Castes()

	require.NotEmpty(t, castes)
	for i := 1; i < len(castes); i++ {
		assert.LessOrEqual(t, castes[i-1], castes[i])
	}
	assert.Contains(t, castes, "VELLALAR")
}

func TestLoadRemoteNoURL(t *testing.T) {
	s := New("")

	assert.NoError(t, s.LoadRemote(context.Background()))
	assert.True(t, s.IsValid("BRAHMIN"))
}

func TestLoadRemoteServerErrorKeepsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(srv.URL)

	require.Error(t, s.LoadRemote(context.Background()))
	assert.True(t, s.IsValid("BRAHMIN"))
	assert.Equal(t, []string{"AADISAIVER", "AYAN", "AYYANGAR", "IYYAR"}, s.SubCastes("BRAHMIN"))
}

func TestLoadRemoteEmptyBodyKeepsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	}))
	defer srv.Close()

	s := New(srv.URL)

	require.ErrorIs(t, s.LoadRemote(context.Background()), ErrCorruptSource)
	assert.True(t, s.IsValid("BRAHMIN"))
}

func TestLoadRemoteCorruptSheetKeepsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a,b,c,d,CASTE,SUBCASTE\n,,,,BRAHMIN;GOUNDER,X\n"))
	}))
	defer srv.Close()

	s := New(srv.URL)

	require.ErrorIs(t, s.LoadRemote(context.Background()), ErrCorruptSource)
	assert.True(t, s.IsValid("BRAHMIN"))
	assert.False(t, s.IsValid("BRAHMIN;GOUNDER"))
}

func TestLoadRemoteGoodSheetReplacesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a,b,c,d,CASTE,SUBCASTE\n,,,,KONAR,VELLALAR\n,,,,,YADAV\n"))
	}))
	defer srv.Close()

	s := New(srv.URL)

	require.NoError(t, s.LoadRemote(context.Background()))
	assert.True(t, s.IsValid("KONAR"))
	assert.Equal(t, []string{"VELLALAR", "YADAV"}, s.SubCastes("KONAR"))
	assert.False(t, s.IsValid("BRAHMIN"))
}
