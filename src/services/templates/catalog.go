package templates

import "Backend-Medical-Intake/src/models"

func text(id, label, placeholder string, required bool) models.FormField {
	return models.FormField{ID: id, Type: models.FieldText, Label: label, Placeholder: placeholder, Required: required}
}

func typed(id string, t models.FieldType, label string, required bool) models.FormField {
	return models.FormField{ID: id, Type: t, Label: label, Required: required}
}

func choice(id string, t models.FieldType, label string, required bool, options ...string) models.FormField {
	return models.FormField{ID: id, Type: t, Label: label, Required: required, Options: options}
}

var yesNo = []string{"Yes", "No"}

var catalog = []models.FormTemplate{
	{
		ID:          "general-intake",
		Title:       "General Patient Intake",
		Description: "Comprehensive intake form for new patients",
		Category:    "General",
		Preview:     "Basic patient information, medical history, insurance details",
		Fields: models.Fields{
			text("field_1", "Full Name", "Enter your full name", true),
			typed("field_2", models.FieldEmail, "Email Address", true),
			typed("field_3", models.FieldPhone, "Phone Number", true),
			typed("field_4", models.FieldDate, "Date of Birth", true),
			text("field_5", "Insurance Provider", "Enter your insurance provider", false),
			text("field_6", "Policy Number", "Enter your policy number", false),
			typed("field_7", models.FieldTextarea, "Medical History", false),
			typed("field_8", models.FieldTextarea, "Current Medications", false),
			typed("field_9", models.FieldTextarea, "Allergies", false),
			text("field_10", "Emergency Contact Name", "", true),
			typed("field_11", models.FieldPhone, "Emergency Contact Phone", true),
			choice("field_12", models.FieldCheckbox, "I consent to treatment", true, "I agree"),
		},
	},
	{
		ID:          "dental-intake",
		Title:       "Dental Patient Intake",
		Description: "Specialized form for dental practices",
		Category:    "Dental",
		Preview:     "Dental history, current concerns, insurance, emergency contact",
		Fields: models.Fields{
			text("field_1", "Full Name", "Enter your full name", true),
			typed("field_2", models.FieldDate, "Date of Birth", true),
			typed("field_3", models.FieldPhone, "Phone Number", true),
			choice("field_4", models.FieldSelect, "Reason for Visit", true, "Routine Cleaning", "Tooth Pain", "Check-up", "Emergency"),
			choice("field_5", models.FieldRadio, "Have you had dental work in the past year?", true, yesNo...),
			typed("field_6", models.FieldDate, "Date of Last Dental Visit", false),
			choice("field_7", models.FieldCheckbox, "Current Symptoms", false, "Sensitivity", "Bleeding Gums", "Jaw Pain", "Bad Breath"),
			typed("field_8", models.FieldTextarea, "Describe Your Concern", false),
			text("field_9", "Dental Insurance Provider", "", false),
			text("field_10", "Policy Number", "", false),
			choice("field_11", models.FieldRadio, "Are you anxious about dental procedures?", false, yesNo...),
			typed("field_12", models.FieldTextarea, "Allergies", false),
			typed("field_13", models.FieldTextarea, "Current Medications", false),
			text("field_14", "Emergency Contact Name", "", true),
			typed("field_15", models.FieldPhone, "Emergency Contact Phone", true),
		},
	},
	{
		ID:          "pediatric-intake",
		Title:       "Pediatric Intake Form",
		Description: "Child-focused intake form with parent/guardian information",
		Category:    "Pediatric",
		Preview:     "Child information, parent details, vaccination records, allergies",
		Fields: models.Fields{
			text("field_1", "Child's Full Name", "", true),
			typed("field_2", models.FieldDate, "Child's Date of Birth", true),
			choice("field_3", models.FieldSelect, "Sex", true, "Female", "Male", "Other"),
			text("field_4", "Parent/Guardian Name", "", true),
			choice("field_5", models.FieldSelect, "Relationship to Child", true, "Mother", "Father", "Guardian", "Other"),
			typed("field_6", models.FieldEmail, "Parent/Guardian Email", true),
			typed("field_7", models.FieldPhone, "Parent/Guardian Phone", true),
			choice("field_8", models.FieldRadio, "Are vaccinations up to date?", true, "Yes", "No", "Not sure"),
			typed("field_9", models.FieldTextarea, "Vaccination Notes", false),
			typed("field_10", models.FieldTextarea, "Allergies", false),
			typed("field_11", models.FieldTextarea, "Current Medications", false),
			typed("field_12", models.FieldNumber, "Birth Weight (kg)", false),
			choice("field_13", models.FieldRadio, "Born premature?", false, yesNo...),
			typed("field_14", models.FieldTextarea, "Developmental Concerns", false),
			text("field_15", "School / Daycare", "", false),
			text("field_16", "Previous Pediatrician", "", false),
			typed("field_17", models.FieldTextarea, "Reason for Visit", true),
			choice("field_18", models.FieldCheckbox, "Parental consent", true, "I consent to treatment of my child"),
		},
	},
	{
		ID:          "mental-health",
		Title:       "Mental Health Intake",
		Description: "Comprehensive mental health assessment form",
		Category:    "Mental Health",
		Preview:     "Mental health history, current symptoms, medications, support system",
		Fields: models.Fields{
			text("field_1", "Full Name", "Enter your full name", true),
			typed("field_2", models.FieldDate, "Date of Birth", true),
			typed("field_3", models.FieldEmail, "Email Address", true),
			typed("field_4", models.FieldPhone, "Phone Number", true),
			typed("field_5", models.FieldTextarea, "Current Concerns", true),
			choice("field_6", models.FieldCheckbox, "Symptoms in the last two weeks", false,
				"Low mood", "Anxiety", "Sleep problems", "Loss of interest", "Irritability", "Difficulty concentrating"),
			choice("field_7", models.FieldSelect, "How long have you had these concerns?", false,
				"Less than a month", "1-6 months", "6-12 months", "More than a year"),
			choice("field_8", models.FieldRadio, "Have you received mental health treatment before?", true, yesNo...),
			typed("field_9", models.FieldTextarea, "Previous Treatment Details", false),
			typed("field_10", models.FieldTextarea, "Current Medications", false),
			choice("field_11", models.FieldRadio, "Are you currently having thoughts of harming yourself?", true, yesNo...),
			choice("field_12", models.FieldSelect, "Alcohol use", false, "Never", "Occasionally", "Weekly", "Daily"),
			choice("field_13", models.FieldSelect, "Substance use", false, "Never", "In the past", "Currently"),
			choice("field_14", models.FieldRadio, "Family history of mental illness?", false, "Yes", "No", "Not sure"),
			typed("field_15", models.FieldNumber, "Average hours of sleep per night", false),
			choice("field_16", models.FieldSelect, "Employment status", false, "Employed", "Unemployed", "Student", "Retired"),
			typed("field_17", models.FieldTextarea, "Support System", false),
			text("field_18", "Primary Care Physician", "", false),
			typed("field_19", models.FieldTextarea, "Goals for Therapy", false),
			text("field_20", "Emergency Contact Name", "", true),
			typed("field_21", models.FieldPhone, "Emergency Contact Phone", true),
			choice("field_22", models.FieldCheckbox, "Consent", true, "I consent to assessment"),
		},
	},
	{
		ID:          "orthopedic-intake",
		Title:       "Orthopedic Intake",
		Description: "Specialized form for orthopedic consultations",
		Category:    "Orthopedic",
		Preview:     "Injury history, pain assessment, mobility, previous treatments",
		Fields: models.Fields{
			text("field_1", "Full Name", "Enter your full name", true),
			typed("field_2", models.FieldDate, "Date of Birth", true),
			typed("field_3", models.FieldPhone, "Phone Number", true),
			choice("field_4", models.FieldSelect, "Area of Concern", true, "Shoulder", "Back", "Hip", "Knee", "Ankle/Foot", "Hand/Wrist", "Other"),
			choice("field_5", models.FieldRadio, "Was there an injury?", true, yesNo...),
			typed("field_6", models.FieldDate, "Date of Injury", false),
			typed("field_7", models.FieldTextarea, "How did the injury happen?", false),
			typed("field_8", models.FieldNumber, "Pain level (0-10)", true),
			choice("field_9", models.FieldCheckbox, "Pain is worse when", false, "Standing", "Sitting", "Walking", "Lifting", "At night"),
			choice("field_10", models.FieldRadio, "Can you bear weight on the affected area?", false, yesNo...),
			choice("field_11", models.FieldCheckbox, "Previous treatments", false, "Physical therapy", "Injections", "Surgery", "Medication", "None"),
			typed("field_12", models.FieldTextarea, "Previous Imaging (X-ray, MRI)", false),
			typed("field_13", models.FieldTextarea, "Current Medications", false),
			typed("field_14", models.FieldTextarea, "Allergies", false),
			text("field_15", "Referring Physician", "", false),
			text("field_16", "Occupation", "", false),
		},
	},
	{
		ID:          "cardiology-intake",
		Title:       "Cardiology Intake",
		Description: "Heart health focused intake form",
		Category:    "Cardiology",
		Preview:     "Cardiac history, symptoms, family history, lifestyle factors",
		Fields: models.Fields{
			text("field_1", "Full Name", "Enter your full name", true),
			typed("field_2", models.FieldDate, "Date of Birth", true),
			typed("field_3", models.FieldEmail, "Email Address", true),
			typed("field_4", models.FieldPhone, "Phone Number", true),
			choice("field_5", models.FieldCheckbox, "Current Symptoms", false,
				"Chest pain", "Shortness of breath", "Palpitations", "Dizziness", "Swelling in legs", "Fatigue"),
			choice("field_6", models.FieldRadio, "Have you had a heart attack?", true, yesNo...),
			choice("field_7", models.FieldRadio, "Do you have high blood pressure?", true, "Yes", "No", "Not sure"),
			choice("field_8", models.FieldRadio, "Do you have high cholesterol?", true, "Yes", "No", "Not sure"),
			choice("field_9", models.FieldRadio, "Do you have diabetes?", true, yesNo...),
			typed("field_10", models.FieldTextarea, "Previous Cardiac Procedures", false),
			typed("field_11", models.FieldTextarea, "Current Medications", false),
			typed("field_12", models.FieldTextarea, "Allergies", false),
			choice("field_13", models.FieldCheckbox, "Family history", false, "Heart disease", "Stroke", "High blood pressure", "Sudden cardiac death"),
			choice("field_14", models.FieldSelect, "Smoking status", true, "Never", "Former", "Current"),
			choice("field_15", models.FieldSelect, "Exercise frequency", false, "Rarely", "1-2 times a week", "3-4 times a week", "5+ times a week"),
			choice("field_16", models.FieldSelect, "Alcohol use", false, "Never", "Occasionally", "Weekly", "Daily"),
			typed("field_17", models.FieldNumber, "Height (cm)", false),
			typed("field_18", models.FieldNumber, "Weight (kg)", false),
			text("field_19", "Referring Physician", "", false),
			text("field_20", "Emergency Contact", "", true),
		},
	},
}
