package core

import (
	"testing"

	"CeibaCheckIn/models"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EmptyInput(t *testing.T) {
	assert.Empty(t, Decode(""))
	assert.Empty(t, Decode("\n\r\n   \n\t\n"))
}

func TestDecode_HeaderOnly(t *testing.T) {
	assert.Empty(t, Decode("Nombre,Día 1,Día 2,Estado\n"))
}

func TestDecode_SpanishHeader(t *testing.T) {
	got := Decode("Nombre,Día 1,Día 2,Estado\nana lópez,jaguar,-,Asistió")

	require.Len(t, got, 1)
	assert.Equal(t, models.Guest{Name: "Ana López", Day1: "Jaguar", Day2: "", Attended: true}, got[0])
}

func TestDecode_StatusRule(t *testing.T) {
	tests := []struct {
		status   string
		attended bool
	}{
		{"Asistió", true},
		{"ASISTIÓ", true},
		{"No Asistió", false},
		{"no asiste", false},
		{"", false},
		{"-", false},
		{"confirmado", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.status, func(t *testing.T) {
			got := Decode("Nombre,Estado\nAna," + tc.status)
			require.Len(t, got, 1)
			assert.Equal(t, tc.attended, got[0].Attended)
		})
	}
}

func TestDecode_CRLFAndBlankLines(t *testing.T) {
	text := "\r\nNombre,Dia 1,Dia 2,Asistencia\r\n\r\npedro pérez,TAPIR,colibrí,asistió\r\n\r\nluisa,,,\r\n"
	got := Decode(text)

	require.Len(t, got, 2)
	assert.Equal(t, models.Guest{Name: "Pedro Pérez", Day1: "Tapir", Day2: "Colibrí", Attended: true}, got[0])
	assert.Equal(t, models.Guest{Name: "Luisa"}, got[1])
}

func TestDecode_MissingDay2Column(t *testing.T) {
	got := Decode("Nombre,Día 1,Estado\nana,jaguar,Asistió\nluis,tapir,No Asistió")

	require.Len(t, got, 2)
	for _, g := range got {
		assert.Equal(t, "", g.Day2)
	}
	assert.Equal(t, "Jaguar", got[0].Day1)
}

func TestDecode_GenericNameHeaderAndColumnOrder(t *testing.T) {
	got := Decode("Estado , Día 2 ,Full NAME\nAsistió,ocelote,  rosa  ")

	require.Len(t, got, 1)
	assert.Equal(t, models.Guest{Name: "Rosa", Day2: "Ocelote", Attended: true}, got[0])
}

func TestDecode_SkipsRowsWithoutName(t *testing.T) {
	got := Decode("Nombre,Día 1\n-,jaguar\n   ,tapir\nana\n")

	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "", got[0].Day1) // short row
}

func TestDecode_NoNameColumn(t *testing.T) {
	assert.Empty(t, Decode("Día 1,Día 2\njaguar,tapir"))
}

func TestDecode_QuotedCells(t *testing.T) {
	got := Decode("Nombre,Día 1\n\"lópez, ana\",\"Tapir, Jaguar\"")

	require.Len(t, got, 1)
	assert.Equal(t, "López, Ana", got[0].Name)
	assert.Equal(t, "Tapir, Jaguar", got[0].Day1)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trailing-comma", "a,", []string{"a", ""}},
		{"empty", "", []string{""}},
		{"quoted-comma", `"a,b",c`, []string{"a,b", "c"}},
		{"doubled-quote", `"He said ""hi""",x`, []string{`He said "hi"`, "x"}},
		{"quote-mid-field", `ab"c,d"e`, []string{"abc,de"}},
		{"unterminated", `"abc,d`, []string{"abc,d"}},
		{"utf8", "josé,núñez", []string{"josé", "núñez"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, SplitLine(tc.in))
		})
	}
}

func TestEncode_HeaderOnly(t *testing.T) {
	assert.Equal(t, "Nombre,Día 1,Día 2,Estado", Encode(nil))
}

func TestEncode_Escaping(t *testing.T) {
	out := Encode([]models.Guest{{Name: "Ana", Day1: "Tapir, Jaguar"}})
	assert.Equal(t, "Nombre,Día 1,Día 2,Estado\nAna,\"Tapir, Jaguar\",,No Asistió", out)

	assert.Equal(t, `"He said ""hi"""`, EscapeCell(`He said "hi"`))
	assert.Equal(t, []string{`He said "hi"`}, SplitLine(EscapeCell(`He said "hi"`)))
	assert.Equal(t, "\"two\nlines\"", EscapeCell("two\nlines"))
	assert.Equal(t, "plain", EscapeCell("plain"))
}

func TestEncode_Golden(t *testing.T) {
	guests := []models.Guest{
		{Name: "Ana López", Day1: "Jaguar", Attended: true},
		{Name: "María-José Núñez", Day1: "Tapir, Jaguar", Day2: "Colibrí"},
		{Name: `Pedro "Peque" Gil`, Day2: "Ocelote", Attended: true},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "encode_guests", []byte(Encode(guests)))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	guests := []models.Guest{
		{Name: "Ana López", Day1: "Jaguar", Attended: true},
		{Name: "Pedro Pérez", Day2: "Tapir"},
		{Name: "María-José Núñez", Day1: "Colibrí", Day2: "Ocelote", Attended: true},
		{Name: "Luis"},
	}

	assert.Equal(t, guests, Decode(Encode(guests)))
}

func TestRows(t *testing.T) {
	rows := Rows([]models.Guest{{Name: "Ana, la grande", Attended: true}})

	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Ana, la grande", "", "", "Asistió"}, rows[1]) // no escaping here
}
