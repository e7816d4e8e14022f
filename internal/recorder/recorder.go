package recorder

// ResetEvent records a prestige, ascension or full reset.
type ResetEvent struct {
	Kind           string // "PRESTIGE", "ASCENSION" or "RESET"
	RunNumber      int
	RepsBefore     float64
	LifetimeReps   float64
	PrestigeCount  int
	AscensionStars int
	CoinsEarned    int64
	GymCoinsAfter  int64
}

// AchievementEvent records an achievement being earned.
type AchievementEvent struct {
	RewardID  string
	Name      string
	Secret    bool
	RunNumber int
}

// GameEvent records a random event, a goblin outcome or a daily goal.
type GameEvent struct {
	Kind       string // "EVENT", "ULTRA", "CHAIN", "GOBLIN_STOLE", "GOBLIN_CAUGHT", "GOBLIN_ESCAPED", "DAILY_GOAL"
	EventID    string
	Multiplier float64
	Amount     float64
	RunNumber  int
}

// Recorder persists milestone history for later analysis.
type Recorder interface {
	RecordReset(evt *ResetEvent) error
	RecordAchievement(evt *AchievementEvent) error
	RecordGameEvent(evt *GameEvent) error
	Close() error
}
