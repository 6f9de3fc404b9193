package models

// Seed datasets used when a tracker's persisted value is missing, empty, or
// fails to parse. Corrupt local state is silently replaced by these rather
// than crashing.

func SeedMoodEntries() []MoodEntry {
	return []MoodEntry{
		{
			ID: 1, Date: "2025-01-30", Time: "10:30",
			MoodScore: 7, MoodLabel: "Happy", MoodEmoji: "😊",
			Energy: 8, Stress: 3, Sleep: 7, Weather: WeatherSunny,
			Activities:  []string{"Exercise", "Meditation", "Socializing"},
			Triggers:    []string{},
			Notes:       "Great day! Exercise in the morning really helped. Feeling motivated and energized.",
			Medications: []string{"Sertraline 100mg"},
			Symptoms:    []string{"None"},
		},
		{
			ID: 2, Date: "2025-01-29", Time: "15:15",
			MoodScore: 5, MoodLabel: "Neutral", MoodEmoji: "😐",
			Energy: 5, Stress: 5, Sleep: 6, Weather: WeatherCloudy,
			Activities:  []string{"Work", "Reading"},
			Triggers:    []string{"Work deadline", "Less sleep than usual"},
			Notes:       "Moderate mood. Work was stressful today but got most tasks done.",
			Medications: []string{"Sertraline 100mg"},
			Symptoms:    []string{"Slight anxiety"},
		},
		{
			ID: 3, Date: "2025-01-28", Time: "20:45",
			MoodScore: 3, MoodLabel: "Sad", MoodEmoji: "😢",
			Energy: 2, Stress: 8, Sleep: 5, Weather: WeatherRainy,
			Activities:  []string{"Rest"},
			Triggers:    []string{"Poor sleep", "Rainy weather", "Stressful situation at work"},
			Notes:       "Difficult day. Low mood and low energy. Feeling overwhelmed by work.",
			Medications: []string{"Sertraline 100mg"},
			Symptoms:    []string{"Anxiety", "Fatigue", "Difficulty concentrating"},
		},
		{
			ID: 4, Date: "2025-01-27", Time: "14:00",
			MoodScore: 8, MoodLabel: "Very Happy", MoodEmoji: "😄",
			Energy: 9, Stress: 2, Sleep: 8, Weather: WeatherSunny,
			Activities:  []string{"Exercise", "Time with friends", "Outdoor walk"},
			Triggers:    []string{},
			Notes:       "Excellent day! Spent time with friends and enjoyed outdoor activities.",
			Medications: []string{"Sertraline 100mg"},
			Symptoms:    []string{"None"},
		},
	}
}

func SeedMedications() []Medication {
	return []Medication{
		{
			ID: 1, Name: "Sertraline", Dosage: "100mg", Form: FormTablet,
			Frequency: FreqDaily, Times: []string{"09:00"},
			Purpose: "Depression & Anxiety", PrescribedBy: "Dr. Adeyemi",
			StartDate: "2024-11-15", Active: true, WithFood: true,
			SideEffects: []string{"Nausea", "Headache"},
			Notes:       "Take with breakfast. May cause drowsiness initially.",
			Color:       "#6b8e7f",
		},
		{
			ID: 2, Name: "Lamotrigine", Dosage: "200mg", Form: FormTablet,
			Frequency: FreqTwiceDaily, Times: []string{"09:00", "21:00"},
			Purpose: "Bipolar Disorder", PrescribedBy: "Dr. Okonkwo",
			StartDate: "2024-10-01", Active: true,
			SideEffects: []string{},
			Notes:       "Mood stabilizer. Do not stop abruptly.",
			Color:       "#d4a574",
		},
		{
			ID: 3, Name: "Melatonin", Dosage: "5mg", Form: FormTablet,
			Frequency: FreqAsNeeded, Times: []string{"22:00"},
			Purpose: "Insomnia", PrescribedBy: "Over-the-counter",
			StartDate: "2025-01-01", Active: true,
			SideEffects: []string{},
			Notes:       "Take 30 minutes before bed only when needed.",
			Color:       "#b8916d",
		},
	}
}

func SeedDoseHistory() []DoseRecord {
	taken915 := "09:15"
	taken905 := "09:05"
	return []DoseRecord{
		{ID: 1, MedicationID: 1, MedicationName: "Sertraline", ScheduledTime: "09:00", TakenTime: &taken915, Date: "2025-01-30", Status: DoseTaken},
		{ID: 2, MedicationID: 2, MedicationName: "Lamotrigine", ScheduledTime: "09:00", TakenTime: &taken915, Date: "2025-01-30", Status: DoseTaken},
		{ID: 3, MedicationID: 2, MedicationName: "Lamotrigine", ScheduledTime: "21:00", Date: "2025-01-30", Status: DoseMissed, Notes: "Forgot evening dose"},
		{ID: 4, MedicationID: 1, MedicationName: "Sertraline", ScheduledTime: "09:00", TakenTime: &taken905, Date: "2025-01-29", Status: DoseTaken},
	}
}

func SeedRecoveryEntries() []RecoveryEntry {
	return []RecoveryEntry{
		{
			ID: 1, Date: "2025-01-30", Time: "14:30", Kind: KindUrgeResisted,
			UrgeIntensity: 7, ResistanceStrength: 8,
			Triggers:         []string{"Saw sports betting ad", "Friend mentioned winnings"},
			CopingStrategies: []string{"Called accountability partner", "Went for a walk"},
			Mood:             "anxious",
			Notes:            "Strong urge to bet on weekend games. Called my sponsor instead. Proud of myself.",
			MoneyNotSpent:    5000, // naira
			DaysClean:        15,
		},
		{
			ID: 2, Date: "2025-01-28", Time: "20:15", Kind: KindRelapse,
			AmountLost: 8000, DurationMin: 45,
			Triggers: []string{"Boredom", "Stress from work"},
			Mood:     "depressed",
			Notes:    "Relapsed after stressful day at work. Bet on virtual games. Feel terrible.",
		},
		{
			ID: 3, Date: "2025-01-25", Time: "16:00", Kind: KindUrgeResisted,
			UrgeIntensity: 9, ResistanceStrength: 6,
			Triggers:         []string{"Payday", "Passed betting shop"},
			CopingStrategies: []string{"Distraction technique", "Called helpline"},
			Mood:             "stressed",
			Notes:            "Very strong urge on payday. Almost went in but called helpline instead.",
			MoneyNotSpent:    10000,
			DaysClean:        12,
		},
	}
}

func SeedStimTypes() []StimType {
	return []StimType{
		{ID: 1, Name: "Hand Flapping", Category: StimMotor},
		{ID: 2, Name: "Rocking", Category: StimMotor},
		{ID: 3, Name: "Humming", Category: StimSensory},
		{ID: 4, Name: "Finger Tapping", Category: StimMotor},
	}
}

func SeedStimEvents() []StimEvent { return []StimEvent{} }

func SeedGlucoseReadings() []GlucoseReading {
	return []GlucoseReading{
		{ID: 1, Date: "2025-01-30", Time: "08:00", Value: 95},
		{ID: 2, Date: "2025-01-30", Time: "12:00", Value: 142},
		{ID: 3, Date: "2025-01-30", Time: "15:00", Value: 118},
		{ID: 4, Date: "2025-01-30", Time: "18:00", Value: 135},
		{ID: 5, Date: "2025-01-30", Time: "21:00", Value: 105},
	}
}

func SeedBPReadings() []BPReading {
	return []BPReading{
		{ID: 1, Date: "2025-01-30", Time: "08:00", Systolic: 128, Diastolic: 82},
		{ID: 2, Date: "2025-01-30", Time: "14:00", Systolic: 135, Diastolic: 88},
		{ID: 3, Date: "2025-01-30", Time: "20:00", Systolic: 122, Diastolic: 78},
	}
}

func SeedMealEntries() []MealEntry {
	return []MealEntry{
		{ID: 1, Date: "2025-01-30", Time: "08:30", Type: MealBreakfast, Name: "Oatmeal Power Bowl", Calories: 320, Tags: []string{"high fiber", "low sodium"}},
		{ID: 2, Date: "2025-01-30", Time: "13:00", Type: MealLunch, Name: "Quinoa Buddha Bowl", Calories: 480, Tags: []string{"vegetable-rich"}},
		{ID: 3, Date: "2025-01-30", Time: "19:00", Type: MealDinner, Name: "Grilled Salmon Salad", Calories: 520, Tags: []string{"high protein"}},
	}
}
