// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth in plies for both sides.
const DEFAULT_DEPTH = 6

// MAX_TURNS bounds a self-play game.
const MAX_TURNS = 300

const DEFAULT_ALGORITHM = "alphabeta"

// DEFAULT_GAMES plays a single game.
const DEFAULT_GAMES = 1

const DEFAULT_LOG_LEVEL = "info"

// ENV_PREFIX prefixes environment overrides, e.g. ADUGO_MAX_TURNS.
const ENV_PREFIX = "ADUGO"
