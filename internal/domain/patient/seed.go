package patient

// SeedSnapshot returns the example collection used on first boot, before any
// snapshot has been persisted: two beds with fully charted records.
func SeedSnapshot() *Snapshot {
	bed08 := &Record{
		Bed:           "ICU 08",
		Name:          "João Silva Santos",
		Age:           "65",
		Sex:           "M",
		AdmissionDate: "2025-01-10",
		ICUDay:        "5",

		MainDiagnosis: "Septic shock of pulmonary origin",
		History:       "Hypertension, type 2 diabetes. Admitted with community-acquired pneumonia progressing to septic shock.",
		Problems:      "1. Septic shock\n2. Acute respiratory failure\n3. Acute kidney injury KDIGO 2",
		Neuro:         "Sedated, RASS -2. No focal deficits before sedation.",
		Cardio:        "Norepinephrine 0.3 mcg/kg/min. MAP 68.",
		Resp:          "Mechanically ventilated, moderate ARDS.",
		Renal:         "Oliguric, creatinine rising. Nephrology following.",
		Infection:     "Piperacillin-tazobactam D3. Cultures pending.",
		Plan:          "Wean norepinephrine as tolerated. Reassess volume status. Follow cultures.",

		VentMode:           "PCV",
		TidalVolume:        "380",
		RespRate:           "20",
		PEEP:               "12",
		PlateauPressure:    "27",
		PeakPressure:       "30",
		FiO2:               "60",
		InspiratoryFlow:    "60",
		MeanAirwayPressure: "18",

		PaO2:   "84",
		PFFiO2: "60",
		Height: "175",

		FluidInputs:  "SF 0.9% 1000ml\nNorepinephrine 48ml\nDiet 400ml",
		FluidOutputs: "Urine 350ml\nDrain 120ml",

		SofaResp:   "3",
		SofaCoag:   "2",
		SofaLiver:  "0",
		SofaCardio: "4",
		SofaGCS:    "4",
		SofaRenal:  "2",

		GCSEyes:   "1",
		GCSVerbal: "1",
		GCSMotor:  "1",

		QSofaMental: "1",
		QSofaSBP:    "1",
		QSofaRR:     "1",

		Weight:            "75",
		IntubationHours:   "96",
		PredictedVentDays: "4",
		RASS:              "-2",
		RASSTarget:        "-1",
		CPOTFace:          "1",
		CPOTMovements:     "0",
		CPOTTension:       "1",
		CPOTVentilator:    "1",
		CPOTTarget:        "2",

		FentanylDose:                 "2.5",
		FentanylConcentration:        "50",
		FentanylInfusion:             "3.75",
		PropofolDose:                 "2.0",
		PropofolConcentration:        "10",
		PropofolInfusion:             "15.00",
		DexmedetomidineDose:          "0",
		DexmedetomidineConcentration: "4",
		MidazolamDose:                "0",
		MidazolamConcentration:       "1",
	}

	bed12 := &Record{
		Bed:           "ICU 12",
		Name:          "Maria Aparecida Costa",
		Age:           "78",
		Sex:           "F",
		AdmissionDate: "2025-01-13",
		ICUDay:        "2",

		MainDiagnosis: "Postoperative CABG",
		History:       "Triple-vessel coronary disease. Elective CABG x3, uneventful bypass.",
		Problems:      "1. Postoperative day 2 CABG\n2. Atrial fibrillation, rate controlled",
		Neuro:         "Awake, oriented, RASS 0.",
		Cardio:        "Off vasopressors. Amiodarone for paroxysmal AF.",
		Resp:          "PSV weaning trial in progress.",
		Renal:         "Preserved urine output.",
		Infection:     "Cefazolin prophylaxis completed.",
		Plan:          "Extubate if weaning parameters hold. Chest tube removal today.",

		VentMode:           "PSV",
		TidalVolume:        "450",
		RespRate:           "14",
		PEEP:               "8",
		PlateauPressure:    "16",
		PeakPressure:       "18",
		FiO2:               "30",
		InspiratoryFlow:    "40",
		MeanAirwayPressure: "10",

		PaO2:   "120",
		PFFiO2: "30",
		Height: "162",

		FluidInputs:  "Ringer lactate 500ml\nDiet 600ml",
		FluidOutputs: "Urine 1100ml\nChest tube 80ml",

		SofaResp:   "1",
		SofaCoag:   "1",
		SofaLiver:  "0",
		SofaCardio: "3",
		SofaGCS:    "1",
		SofaRenal:  "1",

		GCSEyes:   "4",
		GCSVerbal: "4",
		GCSMotor:  "6",

		Weight:            "62",
		IntubationHours:   "40",
		PredictedVentDays: "1",
		RASS:              "0",
		RASSTarget:        "0",
		CPOTFace:          "0",
		CPOTMovements:     "0",
		CPOTTension:       "0",
		CPOTVentilator:    "0",
		CPOTTarget:        "2",

		FentanylDose:                 "1.0",
		FentanylConcentration:        "50",
		FentanylInfusion:             "1.24",
		PropofolDose:                 "0",
		PropofolConcentration:        "10",
		DexmedetomidineDose:          "0.6",
		DexmedetomidineConcentration: "4",
		DexmedetomidineInfusion:      "9.30",
		MidazolamDose:                "0",
		MidazolamConcentration:       "1",
	}

	return &Snapshot{
		Patients: map[string]*Record{
			"bed-08": bed08,
			"bed-12": bed12,
		},
		ActiveID: "bed-08",
	}
}
