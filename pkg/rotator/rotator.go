// Package rotator implémente le contrat de défilement du carrousel d'accueil:
// avancement automatique à intervalle fixe, navigation manuelle avec retour au
// début, et mise en pause. L'index reste toujours dans [0, count).
package rotator

import (
	"sync"
	"time"
)

// DefaultInterval est la cadence du défilement automatique.
const DefaultInterval = 5 * time.Second

// Rotator pilote l'index actif et la direction d'animation du carrousel.
// Toutes les méthodes sont sûres pour un usage concurrent.
type Rotator struct {
	mu        sync.Mutex
	count     int
	index     int
	direction int // +1 avant, -1 arrière (n'affecte que l'animation)
	paused    bool
	stopped   bool
	interval  time.Duration
	timer     *time.Timer
}

// New crée un Rotator pour count diapositives. L'intervalle par défaut est
// DefaultInterval; count doit être >= 1.
func New(count int, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		count:     count,
		direction: 1,
		interval:  interval,
	}
}

// Start lance le défilement automatique. Sans effet si déjà démarré ou arrêté.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil || r.stopped {
		return
	}
	r.timer = time.AfterFunc(r.interval, r.tick)
}

// tick avance d'une diapositive si le carrousel n'est pas en pause, puis
// réarme le timer.
func (r *Rotator) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	// Un tick peut encore se déclencher pendant la prise du verrou par
	// SetPaused: dans ce cas on n'avance pas et on ne réarme pas.
	if r.paused {
		return
	}
	r.advanceLocked(1)
	r.timer.Reset(r.interval)
}

// Next avance manuellement d'une diapositive (retour à 0 après la dernière).
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked(1)
}

// Previous recule d'une diapositive (la première renvoie sur la dernière).
func (r *Rotator) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked(-1)
}

// GoTo saute directement à l'index demandé. La direction devient +1 si la
// cible est après l'index courant, -1 sinon. Les cibles hors bornes sont
// ignorées.
func (r *Rotator) GoTo(target int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if target < 0 || target >= r.count || target == r.index {
		return
	}
	if target > r.index {
		r.direction = 1
	} else {
		r.direction = -1
	}
	r.index = target
}

// SetPaused change l'état de pause. Le timer automatique est annulé puis
// relancé à chaque changement, jamais en cours de cycle.
func (r *Rotator) SetPaused(paused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused == paused || r.stopped {
		return
	}
	r.paused = paused
	if r.timer == nil {
		return
	}
	r.timer.Stop()
	if !paused {
		r.timer.Reset(r.interval)
	}
}

// Stop annule définitivement le défilement automatique (démontage du composant).
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// Index retourne l'index de la diapositive active.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Direction retourne la direction d'animation courante (+1 ou -1).
func (r *Rotator) Direction() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.direction
}

// advanceLocked applique un pas avec retour circulaire. r.mu doit être tenu.
func (r *Rotator) advanceLocked(step int) {
	if r.count <= 0 {
		return
	}
	r.direction = step
	r.index = (r.index + step + r.count) % r.count
}
