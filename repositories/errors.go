package repositories

import "errors"

// ErrNotFound est retourné quand aucune ligne ne correspond (lecture,
// mise à jour ou suppression sur un identifiant inexistant).
var ErrNotFound = errors.New("enregistrement introuvable")
