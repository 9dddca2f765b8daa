package services

import "github.com/quellskin/quell/internal/models"

// Mindset roadmap track labels.
const (
	SOSProgressiveRelaxation = "Progressive Muscle Relaxation"
	SOSCoolingVisualization  = "Cooling Visualization (Itch Interruption)"
	SOSDeepSleepHypnosis     = "Deep Sleep Hypnosis"

	SleepSupportDeltaWave = "Deep Delta Wave Hypnosis"

	CBTStressReframing      = "Stress Reframing"
	CBTMirrorWork           = "Mirror Work & Self-Compassion"
	CBTBehavioralActivation = "Behavioral Activation"
)

// SelectMindsetRoadmap picks the SOS audio, sleep support, and CBT pathway
// labels. Each picker walks its checks in order with the later match taking
// precedence, which is the lock-in behavior the content team tuned.
func SelectMindsetRoadmap(data models.QuestionnaireData, psychodermProfile string) models.MindsetRoadmap {
	cbtPathway := CBTStressReframing
	if psychodermProfile == models.PsychoShameProne || models.Contains(data.PrimaryGoal, "Confidence") {
		cbtPathway = CBTMirrorWork
	}
	if psychodermProfile == models.PsychoAvoidant {
		cbtPathway = CBTBehavioralActivation
	}

	sosAudio := SOSProgressiveRelaxation
	if data.ItchScore > 6 || models.Contains(data.PrimaryGoal, "Stop Itch") || models.Contains(data.ScratchTiming, "Constant") {
		sosAudio = SOSCoolingVisualization
	}
	if data.SleepImpact == models.SleepImpactSevere || models.Contains(data.PrimaryGoal, "Sleep Better") || models.Contains(data.ScratchTiming, "Night (Sleep)") {
		sosAudio = SOSDeepSleepHypnosis
	}

	return models.MindsetRoadmap{
		SOS:          sosAudio,
		SleepSupport: SleepSupportDeltaWave,
		CBTPathway:   cbtPathway,
	}
}
