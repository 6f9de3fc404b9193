package constants

// Tracker identifies one tracking domain. Tracker names double as the
// prefix for report and export filenames.
type Tracker string

const (
	AppName         = "neuropulse"
	Version         = "v0.3.0"
	DefaultDataPath = "~/.config/neuropulse"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "neuropulse-"

	TrackerMood     Tracker = "mood"
	TrackerMeds     Tracker = "medication"
	TrackerRecovery Tracker = "gambling-recovery"
	TrackerStims    Tracker = "stimming"
	TrackerVitals   Tracker = "vitals"
	TrackerMeals    Tracker = "meals"
)

// Storage keys. One fixed key per tracker; the value is always the JSON
// array of that tracker's records.
const (
	KeyMoodEntries     = "mood_entries"
	KeyMedications     = "medications"
	KeyDoseHistory     = "dose_history"
	KeyRecoveryEntries = "recovery_entries"
	KeyStimTypes       = "stim_types"
	KeyStimLog         = "stim_log"
	KeyGlucoseReadings = "glucose_readings"
	KeyBPReadings      = "bp_readings"
	KeyMealEntries     = "meal_entries"
	KeyChatProfile     = "chat_profile"
)

// Arvin chat backend defaults.
const (
	DefaultArvinURL = "http://localhost:5000"
	ArvinAPIPrefix  = "/api/arvin"
)
