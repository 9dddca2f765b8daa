package content

// DayTask is one half of a day plan. Note carries the supporting science or
// reflection line shown under the task.
type DayTask struct {
	Title string `json:"title"`
	Task  string `json:"task"`
	Note  string `json:"note"`
}

type DayPlan struct {
	Title   string  `json:"title"`
	Morning DayTask `json:"morning"`
	Evening DayTask `json:"evening"`
}

type MindsetModule struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Aim         string    `json:"aim"`
	Duration    string    `json:"duration"`
	Tags        []string  `json:"tags"`
	Audio       string    `json:"audio"`
	Days        []DayPlan `json:"days"`
}

// ModuleByID returns the mindset module for the given id. The second return
// is false when the id is unknown.
func ModuleByID(id string) (MindsetModule, bool) {
	for _, module := range mindsetModules {
		if module.ID == id {
			return module, true
		}
	}
	return MindsetModule{}, false
}

// Modules returns the full module catalog in display order.
func Modules() []MindsetModule {
	result := make([]MindsetModule, len(mindsetModules))
	copy(result, mindsetModules)
	return result
}

// ModuleDayCount returns the number of day plans in a module, falling back
// to 7 for unknown ids so progress counters stay bounded.
func ModuleDayCount(id string) int {
	if module, ok := ModuleByID(id); ok {
		return len(module.Days)
	}
	return 7
}

var mindsetModules = []MindsetModule{
	{
		ID:          "rewire-itch",
		Title:       "Rewire the Itch Loop",
		Description: "Break the mental feedback loop between stress, negative thoughts, and the itch-scratch cycle.",
		Aim:         "Stop subconscious scratching",
		Duration:    "7 Days",
		Tags:        []string{"NLP", "Habit Reversal", "CBT"},
		Audio:       "Reset Skin Identity",
		Days: []DayPlan{
			{
				Title: "Awareness",
				Morning: DayTask{
					Title: "The Pause Button",
					Task:  "Today, do not try to stop scratching. Just DELAY it by 10 seconds. Count to 10 before you touch your skin.",
					Note:  "This engages your Prefrontal Cortex (logic), interrupting the automatic Amygdala (panic) loop.",
				},
				Evening: DayTask{
					Title: "Trigger Log",
					Task:  "Write down the 3 times you scratched most today. Was it boredom, stress, or heat?",
					Note:  "Awareness is the first step to reprogramming.",
				},
			},
			{
				Title: "Safety Signals",
				Morning: DayTask{
					Title: "Speak Safety",
					Task:  "When the itch hits, say aloud: 'I am safe. This is just a sensation. It will pass.'",
					Note:  "Itch is interpreted by the brain as a 'threat'. Verbalizing safety downregulates the threat response.",
				},
				Evening: DayTask{
					Title: "Cooling Down",
					Task:  "Use an ice pack instead of nails for your worst itch tonight.",
					Note:  "Temperature receptors override itch receptors in the spinal cord.",
				},
			},
			{
				Title: "Language Shift",
				Morning: DayTask{
					Title: "Reframe the Flare",
					Task:  "Catch yourself saying 'My Eczema'. Change it to 'The Skin'. Dissociate your identity from the condition.",
					Note:  "Linguistic distancing reduces emotional inflammation.",
				},
				Evening: DayTask{
					Title: "Gratitude Scan",
					Task:  "Find one part of your body that DOES NOT itch. Focus on it for 2 minutes.",
					Note:  "Retraining the brain to notice comfort, not just discomfort.",
				},
			},
			{
				Title: "Hand Distraction",
				Morning: DayTask{
					Title: "Busy Hands",
					Task:  "Wear a ring, hold a stone, or use a fidget toy whenever you sit still (working/watching TV).",
					Note:  "Habit Reversal Training (HRT) requires a competing physical response.",
				},
				Evening: DayTask{
					Title: "Progressive Release",
					Task:  "Squeeze your fists tight for 5s, then release. Repeat 10x.",
					Note:  "Releasing physical tension often releases the urge to scratch.",
				},
			},
			{
				Title: "Visual Healing",
				Morning: DayTask{
					Title: "The Cool Light",
					Task:  "Close your eyes. Visualize cool, blue healing light coating your itchy spots.",
					Note:  "Visualization activates the same neural pathways as actual sensory input.",
				},
				Evening: DayTask{
					Title: "Forgiveness",
					Task:  "If you scratched today, say 'I forgive myself'. Guilt leads to stress, which leads to more itch.",
					Note:  "Shame fuels the inflammatory cycle.",
				},
			},
			{
				Title: "Environment",
				Morning: DayTask{
					Title: "Friction Check",
					Task:  "Check your clothes tags and seams. Remove anything creating 'micro-friction'.",
					Note:  "Mechanical irritation triggers mast cell degranulation (histamine release).",
				},
				Evening: DayTask{
					Title: "Sanctuary Setup",
					Task:  "Ensure your bedroom is cool (18-19°C).",
					Note:  "Heat is a primary nocturnal itch trigger.",
				},
			},
			{
				Title: "New Identity",
				Morning: DayTask{
					Title: "The Healer",
					Task:  "Write down: 'My body knows how to heal. I am supporting it.'",
					Note:  "Affirmations build new neural pathways over time (Neuroplasticity).",
				},
				Evening: DayTask{
					Title: "The Contract",
					Task:  "Commit to one habit from this week to keep forever.",
					Note:  "Consistency creates the cure.",
				},
			},
		},
	},
	{
		ID:          "attract-healed",
		Title:       "Attract the Healed You",
		Description: "Shift from a mindset of 'fixing a problem' to 'embodying health'. Uses visualization to pull you out of the 'stuck' mindset.",
		Aim:         "Boost hope & manifestation",
		Duration:    "7 Days",
		Tags:        []string{"Visualization", "Manifestation", "Hope"},
		Audio:       "Future Self Embodiment",
		Days: []DayPlan{
			{
				Title: "The Vision",
				Morning: DayTask{
					Title: "Future Scripting",
					Task:  "Write 3 sentences in the present tense about your healed skin. e.g. 'I wake up with smooth, calm skin.'",
					Note:  "The brain cannot distinguish vividly imagined events from reality.",
				},
				Evening: DayTask{
					Title: "Mirror Work",
					Task:  "Look in the mirror. Look into your eyes, ignoring your skin. Say 'I see you.'",
					Note:  "Reconnecting with the self beneath the surface.",
				},
			},
			{
				Title: "Sensory Shift",
				Morning: DayTask{
					Title: "Feel the Smoothness",
					Task:  "Touch a smooth surface (silk, glass). Imagine your skin feeling exactly like that.",
					Note:  "Sensory substitution trains the brain to expect healing.",
				},
				Evening: DayTask{
					Title: "The Beach Walk",
					Task:  "Visualize yourself walking on a beach, salt air, no pain, confident.",
					Note:  "Embedding the feeling of freedom.",
				},
			},
			{
				Title: "Act As If",
				Morning: DayTask{
					Title: "Wardrobe Win",
					Task:  "Wear an outfit you usually avoid. Wear it for just 30 mins at home.",
					Note:  "Behavioral activation breaks the 'avoidance' cycle.",
				},
				Evening: DayTask{
					Title: "Social Confidence",
					Task:  "Imagine walking into a room and no one looking at your skin.",
					Note:  "Projection creates perception.",
				},
			},
			{
				Title: "Release Doubt",
				Morning: DayTask{
					Title: "Burn the Old Story",
					Task:  "Write down 'I will always suffer'. Then cross it out vigorously.",
					Note:  "Physical symbolic acts help the brain discard limiting beliefs.",
				},
				Evening: DayTask{
					Title: "Sleep Expectation",
					Task:  "Tell yourself: 'Tonight I heal while I sleep.'",
					Note:  "Setting the Reticular Activating System (RAS).",
				},
			},
			{
				Title: "Gratitude",
				Morning: DayTask{
					Title: "Body Thanks",
					Task:  "Thank your legs for walking, your hands for holding. Shift focus from appearance to function.",
					Note:  "Gratitude reduces cortisol by 23%.",
				},
				Evening: DayTask{
					Title: "Review Wins",
					Task:  "List 3 small improvements, no matter how tiny.",
					Note:  "What we focus on expands.",
				},
			},
			{
				Title: "Vibrational Rise",
				Morning: DayTask{
					Title: "Power Pose",
					Task:  "Stand like Superman for 2 minutes. Hands on hips.",
					Note:  "Increases testosterone (confidence) and lowers cortisol.",
				},
				Evening: DayTask{
					Title: "Self-Love Letter",
					Task:  "Write a love letter to your future healed self.",
					Note:  "Bridging the gap between now and then.",
				},
			},
			{
				Title: "Anchor",
				Morning: DayTask{
					Title: "The Anchor",
					Task:  "Pick a physical object (bracelet, stone). Touch it and feel 'Healed'.",
					Note:  "NLP Anchoring technique.",
				},
				Evening: DayTask{
					Title: "Release",
					Task:  "Let go of the 'need' to be healed. Trust it is coming.",
					Note:  "Detachment reduces resistance.",
				},
			},
		},
	},
	{
		ID:          "stress-safety",
		Title:       "From Stress to Safety",
		Description: "Move your body from Sympathetic (Fight/Flight) to Parasympathetic (Rest/Digest) to lower cortisol spikes.",
		Aim:         "Calm the nervous system",
		Duration:    "7 Days",
		Tags:        []string{"Somatic", "Breathwork", "Vagus Nerve"},
		Audio:       "Vagus Nerve Calm",
		Days: []DayPlan{
			{
				Title: "The Breath",
				Morning: DayTask{
					Title: "Box Breathing",
					Task:  "Inhale 4s, Hold 4s, Exhale 4s, Hold 4s. Repeat 4 times.",
					Note:  "Directly hacks the Vagus Nerve to lower heart rate.",
				},
				Evening: DayTask{
					Title: "Jaw Release",
					Task:  "Unclench your jaw. Drop your tongue from the roof of your mouth.",
					Note:  "Stress often hides in the jaw, signaling danger to the brain.",
				},
			},
			{
				Title: "Cold Reset",
				Morning: DayTask{
					Title: "Dive Reflex",
					Task:  "Splash ice-cold water on your face for 30 seconds.",
					Note:  "Triggers the Mammalian Dive Reflex, instantly slowing metabolism and anxiety.",
				},
				Evening: DayTask{
					Title: "Digital Sunset",
					Task:  "No screens 1 hour before bed. Blue light keeps cortisol high.",
					Note:  "Protecting your melatonin production.",
				},
			},
			{
				Title: "Shake it Off",
				Morning: DayTask{
					Title: "Somatic Shaking",
					Task:  "Shake your hands and legs vigorously for 1 minute.",
					Note:  "Animals shake to discharge adrenaline after a threat. Humans need to do the same.",
				},
				Evening: DayTask{
					Title: "Legs Up Wall",
					Task:  "Lie down with legs up the wall for 5 mins.",
					Note:  "Promotes venous drainage and parasympathetic activation.",
				},
			},
			{
				Title: "Vocal Tone",
				Morning: DayTask{
					Title: "The Hum",
					Task:  "Hum a low tone ('Voooooo') for 2 minutes.",
					Note:  "The Vagus nerve passes through vocal cords. Vibration stimulates it.",
				},
				Evening: DayTask{
					Title: "Silence",
					Task:  "Sit in absolute silence for 5 minutes. No phone, no music.",
					Note:  "Giving the nervous system zero input to process.",
				},
			},
			{
				Title: "Touch",
				Morning: DayTask{
					Title: "Self-Havening",
					Task:  "Stroke your upper arms downwards gently, like hugging yourself.",
					Note:  "Produces Delta waves in the brain, associated with deep safety.",
				},
				Evening: DayTask{
					Title: "Weighted Blanket",
					Task:  "Use a heavy blanket or piles of blankets tonight.",
					Note:  "Deep pressure stimulation increases serotonin.",
				},
			},
			{
				Title: "Nature",
				Morning: DayTask{
					Title: "Sky Gaze",
					Task:  "Look at the sky/horizon for 5 mins (panoramic vision).",
					Note:  "Panoramic vision engages the parasympathetic system; focused vision (screens) engages stress.",
				},
				Evening: DayTask{
					Title: "Grounding",
					Task:  "Stand barefoot on the floor/ground. Feel gravity.",
					Note:  "Connecting to stability.",
				},
			},
			{
				Title: "Integration",
				Morning: DayTask{
					Title: "Stress Audit",
					Task:  "Identify 1 stressor you can simply delete from your life today.",
					Note:  "Reduction is better than management.",
				},
				Evening: DayTask{
					Title: "Safety Anchor",
					Task:  "Place hand on heart. Say 'I am safe' 3 times.",
					Note:  "Creating a portable safety mechanism.",
				},
			},
		},
	},
	{
		ID:          "rebuild-identity",
		Title:       "Rebuild Skin Identity",
		Description: "Separate your self-worth from your skin barrier function. Ideal for those who hide their skin.",
		Aim:         "Build confidence & reduce shame",
		Duration:    "7 Days",
		Tags:        []string{"Confidence", "Self-Worth", "Exposure"},
		Audio:       "Skin Confidence Primer",
		Days: []DayPlan{
			{
				Title: "Separation",
				Morning: DayTask{
					Title: "Who Am I?",
					Task:  "List 5 things about yourself that are not physical (e.g., kind, funny, smart).",
					Note:  "Diversifying your identity reduces the impact of skin flares.",
				},
				Evening: DayTask{
					Title: "The Observer",
					Task:  "Notice your skin without judging it. Just say 'It is red', not 'It looks horrible'.",
					Note:  "Neutrality neutralizes shame.",
				},
			},
			{
				Title: "Exposure",
				Morning: DayTask{
					Title: "Show a Little",
					Task:  "Roll up your sleeves or wear shorts at home for 1 hour.",
					Note:  "Gradual exposure therapy reduces social anxiety.",
				},
				Evening: DayTask{
					Title: "Selfie Challenge",
					Task:  "Take a selfie. Don't post it. Just look at it with kindness.",
					Note:  "Accepting your visual reality.",
				},
			},
			{
				Title: "Values",
				Morning: DayTask{
					Title: "Value Align",
					Task:  "Does your skin stop you from being a good friend? No. Focus on that.",
					Note:  "Realigning with core values builds resilience.",
				},
				Evening: DayTask{
					Title: "Inner Child",
					Task:  "Imagine a child with eczema. Would you hide them? No. Be that kind to yourself.",
					Note:  "Compassion is a skill.",
				},
			},
			{
				Title: "Boundaries",
				Morning: DayTask{
					Title: "The Script",
					Task:  "Prepare a line for if someone asks: 'It's just eczema, I'm healing.'",
					Note:  "Preparedness reduces anticipatory anxiety.",
				},
				Evening: DayTask{
					Title: "No Apology",
					Task:  "Do not apologize for your appearance today.",
					Note:  "You do not owe the world 'perfect' skin.",
				},
			},
			{
				Title: "Confidence",
				Morning: DayTask{
					Title: "Posture Hack",
					Task:  "Shoulders back, chin up. Even if you want to hide.",
					Note:  "Open posture improves mood and lowers stress hormones.",
				},
				Evening: DayTask{
					Title: "Compliment File",
					Task:  "Recall a compliment someone gave you recently.",
					Note:  "Others see your light, not just your skin.",
				},
			},
			{
				Title: "Connection",
				Morning: DayTask{
					Title: "Reach Out",
					Task:  "Text a friend. Focus the convo on THEM, not your skin.",
					Note:  "Social connection buffers stress.",
				},
				Evening: DayTask{
					Title: "Forgiveness",
					Task:  "Forgive your body for 'failing' you. It is trying its best.",
					Note:  "Your body is fighting FOR you, not against you.",
				},
			},
			{
				Title: "Integration",
				Morning: DayTask{
					Title: "I Am More",
					Task:  "Look in mirror. Say 'I am more than my skin'.",
					Note:  "Identity consolidation.",
				},
				Evening: DayTask{
					Title: "Freedom",
					Task:  "Plan an activity for next week you would normally avoid.",
					Note:  "Reclaiming your life.",
				},
			},
		},
	},
	{
		ID:          "release-battle",
		Title:       "Release the Battle",
		Description: "Stop fighting your body. Start parenting it. Connect with the wounded parts of yourself that need safety.",
		Aim:         "Inner child healing",
		Duration:    "7 Days",
		Tags:        []string{"Inner Child", "Compassion", "Softening"},
		Audio:       "Apology to Body",
		Days: []DayPlan{
			{
				Title: "Surrender",
				Morning: DayTask{
					Title: "Drop the Weapons",
					Task:  "Stop 'fighting' the flare. Say 'I accept this is happening right now'.",
					Note:  "Resistance creates tension; tension increases pain.",
				},
				Evening: DayTask{
					Title: "Gentle Touch",
					Task:  "Apply cream as if you were applying it to a baby.",
					Note:  "Touch communicates safety or aggression. Choose safety.",
				},
			},
			{
				Title: "Listening",
				Morning: DayTask{
					Title: "Body Scan",
					Task:  "Ask your body: 'What do you need?' (Rest? Water? Silence?)",
					Note:  "Interoception improves emotional regulation.",
				},
				Evening: DayTask{
					Title: "The Letter",
					Task:  "Write 'I am sorry for hating you' to your skin.",
					Note:  "Grief and anger must be processed to heal.",
				},
			},
			{
				Title: "Nurture",
				Morning: DayTask{
					Title: "Comfort Food",
					Task:  "Eat something warm and nourishing slowly.",
					Note:  "Signaling safety through the gut-brain axis.",
				},
				Evening: DayTask{
					Title: "Nest",
					Task:  "Make your bed extra comfortable. You deserve comfort.",
					Note:  "Creating a safe container.",
				},
			},
			{
				Title: "Emotion",
				Morning: DayTask{
					Title: "Name It",
					Task:  "Name the emotion under the itch. Is it Anger? Sadness?",
					Note:  "'Name it to tame it' - labeling reduces amygdala activity.",
				},
				Evening: DayTask{
					Title: "Cry it Out",
					Task:  "If you need to cry, do it. Tears release cortisol.",
					Note:  "Emotional release often prevents skin eruption.",
				},
			},
			{
				Title: "Play",
				Morning: DayTask{
					Title: "Play Time",
					Task:  "Do something pointless and fun for 10 mins. Doodle, dance.",
					Note:  "Play engages the ventral vagal state (social engagement).",
				},
				Evening: DayTask{
					Title: "Soothing Audio",
					Task:  "Listen to the 'Apology to Body' track tonight.",
					Note:  "Auditory healing.",
				},
			},
			{
				Title: "Protection",
				Morning: DayTask{
					Title: "Say No",
					Task:  "Set one boundary today. Say no to a demand.",
					Note:  "Over-giving depletes the immune system.",
				},
				Evening: DayTask{
					Title: "Bubble",
					Task:  "Visualize a protective bubble around you.",
					Note:  "You are allowed to protect your energy.",
				},
			},
			{
				Title: "Partnership",
				Morning: DayTask{
					Title: "Team Talk",
					Task:  "Say 'We are in this together' to your body.",
					Note:  "Shifting from adversary to ally.",
				},
				Evening: DayTask{
					Title: "Peace Treaty",
					Task:  "Declare the war with your skin over.",
					Note:  "Healing flows where peace exists.",
				},
			},
		},
	},
}
