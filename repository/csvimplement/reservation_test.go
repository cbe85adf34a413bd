package csvimplement

import (
	"os"
	"path/filepath"
	"testing"

	"reserva_bot/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "reservas.csv")
}

func TestAppendAndLoadAll_RoundTrip(t *testing.T) {
	path := tempStore(t)
	repo := NewReservationRepository(path)

	first := &entity.Reservation{
		NumPersonas: 3,
		Date:        "10/10",
		Time:        "19:30",
		CreatedAt:   "2025-10-01T18:00:00Z",
	}
	second := &entity.Reservation{
		NumPersonas: 12,
		Date:        "31-12-25",
		Time:        "21:00",
		CreatedAt:   "2025-10-02T09:15:00Z",
	}

	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, first.NumPersonas, loaded[0].NumPersonas)
	assert.Equal(t, first.Date, loaded[0].Date)
	assert.Equal(t, first.Time, loaded[0].Time)
	assert.Equal(t, first.CreatedAt, loaded[0].CreatedAt)
	assert.Equal(t, second.NumPersonas, loaded[1].NumPersonas)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	path := tempStore(t)
	repo := NewReservationRepository(path)

	require.NoError(t, repo.Append(&entity.Reservation{NumPersonas: 2, Date: "10/10", Time: "20:00", CreatedAt: "2025-10-01T18:00:00Z"}))
	require.NoError(t, repo.Append(&entity.Reservation{NumPersonas: 4, Date: "11/10", Time: "21:00", CreatedAt: "2025-10-01T19:00:00Z"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"num_personas,date,time,created_at\n2,10/10,20:00,2025-10-01T18:00:00Z\n4,11/10,21:00,2025-10-01T19:00:00Z\n",
		string(content))
}

func TestAppend_WritesHeaderToPreCreatedEmptyFile(t *testing.T) {
	path := tempStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	repo := NewReservationRepository(path)
	require.NoError(t, repo.Append(&entity.Reservation{NumPersonas: 5, Date: "12/10", Time: "13:00", CreatedAt: "2025-10-03T11:00:00Z"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"num_personas,date,time,created_at\n5,12/10,13:00,2025-10-03T11:00:00Z\n",
		string(content))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 5, loaded[0].NumPersonas)
}

func TestLoadAll_HeaderlessFileKeepsFirstRecord(t *testing.T) {
	path := tempStore(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("2,10/10,20:00,2025-10-01T18:00:00Z\n"), 0644))

	repo := NewReservationRepository(path)
	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].NumPersonas)
	assert.Equal(t, "10/10", loaded[0].Date)
}

func TestLoadAll_MissingFileIsEmptyStore(t *testing.T) {
	repo := NewReservationRepository(tempStore(t))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadAll_BadIntegerFailsFast(t *testing.T) {
	path := tempStore(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("num_personas,date,time,created_at\ndos,10/10,20:00,2025-10-01T18:00:00Z\n"), 0644))

	repo := NewReservationRepository(path)
	_, err := repo.LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt reservation store")
}

func TestLoadAll_ShortRecordFailsFast(t *testing.T) {
	path := tempStore(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("num_personas,date,time,created_at\n2,10/10\n"), 0644))

	repo := NewReservationRepository(path)
	_, err := repo.LoadAll()
	require.Error(t, err)
}
