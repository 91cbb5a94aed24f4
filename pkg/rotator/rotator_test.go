package rotator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextWrapsAround(t *testing.T) {
	const n = 5
	r := New(n, time.Hour)

	start := r.Index()
	for i := 0; i < n; i++ {
		r.Next()
	}
	assert.Equal(t, start, r.Index(), "N appels à Next doivent revenir au point de départ")
}

func TestPreviousFromZero(t *testing.T) {
	const n = 4
	r := New(n, time.Hour)

	assert.Equal(t, 0, r.Index())
	r.Previous()
	assert.Equal(t, n-1, r.Index(), "Previous depuis 0 doit renvoyer sur la dernière diapositive")
	assert.Equal(t, -1, r.Direction())
}

func TestGoToSetsDirection(t *testing.T) {
	r := New(6, time.Hour)

	r.GoTo(4)
	assert.Equal(t, 4, r.Index())
	assert.Equal(t, 1, r.Direction(), "saut vers l'avant: direction +1")

	r.GoTo(1)
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, -1, r.Direction(), "saut vers l'arrière: direction -1")

	// Cible hors bornes: ignorée.
	r.GoTo(42)
	assert.Equal(t, 1, r.Index())
}

func TestAutoplayAdvances(t *testing.T) {
	r := New(3, 30*time.Millisecond)
	defer r.Stop()
	r.Start()

	time.Sleep(45 * time.Millisecond)
	assert.Equal(t, 1, r.Index(), "après un intervalle, l'index doit avoir avancé de 1")
}

func TestAutoplayPaused(t *testing.T) {
	r := New(3, 30*time.Millisecond)
	defer r.Stop()
	r.Start()
	r.SetPaused(true)

	time.Sleep(75 * time.Millisecond)
	assert.Equal(t, 0, r.Index(), "en pause, l'index ne doit pas bouger")

	r.SetPaused(false)
	time.Sleep(45 * time.Millisecond)
	assert.Equal(t, 1, r.Index(), "après reprise, le défilement repart")
}

func TestStopCancelsAutoplay(t *testing.T) {
	r := New(3, 20*time.Millisecond)
	r.Start()
	r.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, r.Index(), "après Stop, aucun tick ne doit plus avancer l'index")
}
