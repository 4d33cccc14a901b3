package catalog

// Recovery content for each substance, built on understanding addiction as a
// trap rather than a pleasure.
var substances = map[string]Substance{
	"alcohol": {
		ID:    "alcohol",
		Name:  "Alcohol",
		Icon:  "🍷",
		Color: "#8B5CF6",

		Introduction: Introduction{
			Title: "Understanding Alcohol Freedom",
			Sections: []IntroSection{
				{
					Title:   "The Truth About Alcohol",
					Content: "Alcohol doesn't relax you - it creates the tension it pretends to relieve. Every drink you've ever had was fixing a problem that alcohol itself created. The 'relaxation' you feel is just the temporary relief of withdrawal symptoms that started from your last drink.\n\nYou're not giving anything up. You're escaping a trap.",
				},
				{
					Title:   "Why Cravings Are Good News",
					Content: "When you feel a craving, that's not your body needing alcohol - that's the addiction dying. Each craving is weaker than the last. The discomfort you feel is the feeling of becoming free.\n\nDon't fight cravings. Welcome them. They are evidence that you're healing.",
				},
				{
					Title:   "The Brainwashing",
					Content: "Society told you alcohol is essential for fun, relaxation, and social connection. This is a lie. Children have fun without alcohol. You relaxed before you ever drank. Your best conversations weren't dependent on poison.\n\nThe belief that you need alcohol is the only thing making you feel like you need it.",
				},
				{
					Title:   "What You're Gaining",
					Content: "• Real energy, not artificial highs and crashes\n• Genuine emotions, not numbed existence\n• Clear mornings, not foggy regret\n• Authentic confidence, not liquid courage that fades\n• Money back in your pocket\n• Health back in your body\n• Control back in your life",
				},
			},
		},

		Timeline: []Milestone{
			{
				Day:      1,
				Title:    "Day 1: The Beginning of Freedom",
				Physical: "Your body is processing the last alcohol. Blood sugar is stabilizing. You may feel anxious or restless - this is normal and temporary.",
				Mental:   "Your mind might tell you 'one drink would help.' This is the trap speaking, not you. The voice gets quieter every hour.",
				Reframe:  "Every uncomfortable feeling today is the alcohol leaving your system. You're not suffering - you're healing. Non-drinkers don't have these feelings because they never poisoned themselves.",
				Reminder: "You didn't enjoy drinking. You enjoyed briefly stopping the withdrawal that drinking caused. Today, you're ending that cycle forever.",
			},
			{
				Day:      2,
				Title:    "Day 2: The Trap Loosens",
				Physical: "Sleep may be disrupted as your brain chemistry rebalances. Appetite changes are normal. Stay hydrated.",
				Mental:   "The 'voice' may be loud today. Remember: that voice is the addiction, not your true self. Your true self never wanted to be dependent on a poison.",
				Reframe:  "Difficulty sleeping isn't your body 'needing' alcohol - it's your body learning to sleep naturally again, something it knew perfectly well before alcohol interfered.",
				Reminder: "Alcohol never gave you anything. It only took things away - clarity, health, money, time - and then tricked you into thanking it.",
			},
			{
				Day:      3,
				Title:    "Day 3: Chemistry Shifting",
				Physical: "This is often the peak of physical adjustment. Your liver is recovering rapidly. Hydration and rest are your friends.",
				Mental:   "If you feel irritable, recognize this: you're not irritable because you can't drink. You're irritable because alcohol damaged your nervous system, and it's healing.",
				Reframe:  "Non-drinkers aren't walking around irritable because they can't have alcohol. After a few days, neither will you. This is temporary healing, not permanent deprivation.",
				Reminder: "You're not 'resisting' alcohol. You're simply no longer falling for the trick. There's nothing to resist when you see the trap clearly.",
			},
			{
				Day:      4,
				Title:    "Day 4: Clarity Emerging",
				Physical: "Energy levels beginning to stabilize. Skin starting to look healthier. Digestive system calming.",
				Mental:   "Cravings are weakening. You may start noticing how much time and mental energy alcohol was stealing from you.",
				Reframe:  "That mental space that used to be occupied by thinking about drinking, planning drinking, recovering from drinking - it's becoming yours again.",
				Reminder: "Every day gets easier because the trap is releasing its grip. You're not white-knuckling through life - you're walking out of a prison.",
			},
			{
				Day:      5,
				Title:    "Day 5: The Fog Lifts",
				Physical: "Sleep improving. More natural energy throughout the day. Body continuing to heal.",
				Mental:   "You may start feeling emotions more clearly - this can be uncomfortable but it's authentic. Alcohol numbed everything; now you get to feel life again.",
				Reframe:  "If emotions feel intense, good. You're not supposed to go through life numbed. These feelings are part of being fully alive.",
				Reminder: "You haven't lost a friend. You've escaped an enemy that pretended to be a friend while slowly destroying you.",
			},
			{
				Day:      6,
				Title:    "Day 6: Building Momentum",
				Physical: "Liver function improving significantly. Immune system strengthening. Face may look less puffy.",
				Mental:   "The automatic 'I need a drink' thoughts are becoming less frequent. Notice how your brain is rewiring itself.",
				Reframe:  "You're not 'trying not to drink.' You're simply a non-drinker now. Non-drinkers don't struggle - they just don't poison themselves.",
				Reminder: "The version of you that thought you needed alcohol was operating under brainwashing. The real you never needed it.",
			},
			{
				Day:      7,
				Title:    "Day 7: One Week Free",
				Physical: "Significant improvement in sleep quality. Better hydration. Skin and eyes clearer. More stable energy.",
				Mental:   "You've proven the addiction wrong for a full week. The physical dependency is largely broken. What remains is just unlearning old patterns.",
				Reframe:  "You haven't survived a week without alcohol. You've thrived for a week without a poison that was holding you back. Celebrate escaping, not enduring.",
				Reminder: "Look at what you've accomplished in just 7 days. Imagine 30. Imagine 365. Imagine the rest of your life, free.",
			},
			{
				Day:      14,
				Title:    "Day 14: Two Weeks Strong",
				Physical: "Stomach lining healing. Blood pressure normalizing. Weight may be stabilizing. Sleep cycles more natural.",
				Mental:   "Old triggers still exist but have less power. You're developing new responses to stress, boredom, and social situations.",
				Reframe:  "When you see others drinking, don't feel envious. Feel compassion. They're still trapped in the cycle you escaped.",
				Reminder: "You're not missing out on anything. You're finally present for your own life.",
			},
			{
				Day:      21,
				Title:    "Day 21: New Patterns Forming",
				Physical: "Brain chemistry significantly rebalanced. Natural dopamine regulation improving. Physical cravings rare or gone.",
				Mental:   "New habits are solidifying. The thought of drinking is becoming foreign rather than tempting.",
				Reframe:  "By now, you're not an ex-drinker fighting urges. You're a non-drinker living normally. The struggle is ending because you've seen through the illusion.",
				Reminder: "The 'benefits' of alcohol were always fake. The benefits of freedom are real and you're living them.",
			},
			{
				Day:      30,
				Title:    "Day 30: One Month Free",
				Physical: "Liver function dramatically improved. Immune system stronger. Reduced inflammation throughout body. Better skin, better sleep, better everything.",
				Mental:   "The addiction has lost its power. You may barely think about alcohol anymore. When you do, it's with clarity, not craving.",
				Reframe:  "You didn't give up alcohol for 30 days. You got your life back 30 days ago. Every day since has been a bonus.",
				Reminder: "This is your new normal. Not fighting. Not resisting. Just free.",
			},
			{
				Day:      60,
				Title:    "Day 60: Freedom Solidified",
				Physical: "Significant cellular regeneration. Energy levels consistently high. Sleep deeply restorative.",
				Mental:   "Alcohol feels like a distant chapter. You may wonder why you ever thought you needed it.",
				Reframe:  "You now see alcohol for what it always was: an addictive poison wrapped in marketing. The spell is broken.",
				Reminder: "You didn't lose anything. You gained everything.",
			},
			{
				Day:      90,
				Title:    "Day 90: Three Months",
				Physical: "Major organ recovery well underway. Mental clarity at new highs. Physical performance improved.",
				Mental:   "The psychological addiction is essentially gone. You've become a natural non-drinker.",
				Reframe:  "You're not someone who 'can't drink.' You're someone who sees no reason to drink. There's no sacrifice in avoiding something that only harms you.",
				Reminder: "You escaped. You won. Now live your free life.",
			},
		},
	},

	"cocaine": {
		ID:    "cocaine",
		Name:  "Cocaine",
		Icon:  "❄️",
		Color: "#EC4899",

		Introduction: Introduction{
			Title: "Understanding Cocaine Freedom",
			Sections: []IntroSection{
				{
					Title:   "The Cocaine Trap",
					Content: "Cocaine doesn't make you feel good - it hijacks your brain's reward system, releases all your dopamine at once, and then leaves you depleted. The 'high' is just a stolen advance on happiness you would have felt naturally.\n\nEvery time you use, you're not adding pleasure to your life. You're borrowing from tomorrow, next week, next month. And the interest rate is brutal.",
				},
				{
					Title:   "Why The Crash Isn't Real",
					Content: "The depression, anxiety, and emptiness after using isn't a sign that you need more. It's the debt coming due. Your brain temporarily can't make its own happiness because cocaine exhausted the supply.\n\nThis is not your baseline. This is withdrawal. Non-users don't feel this low because they haven't depleted themselves.",
				},
				{
					Title:   "The Illusion of Enhancement",
					Content: "Cocaine didn't make you more confident, social, or capable. It made you feel like you were while actually making you worse at everything. Watch anyone on cocaine - they're not more interesting. They're just less aware of how they're coming across.\n\nReal confidence comes from real accomplishment, real connection, real presence. Cocaine counterfeits all of these.",
				},
				{
					Title:   "What You're Gaining",
					Content: "• Stable mood instead of extreme highs and crushing lows\n• Real connections instead of 3am conversations no one remembers\n• Money that stays in your account\n• A heart that isn't being damaged\n• A nose that works\n• Sleep that actually restores\n• The ability to feel genuine joy from simple things",
				},
			},
		},

		Timeline: []Milestone{
			{
				Day:      1,
				Title:    "Day 1: The Crash Begins",
				Physical: "Exhaustion is normal - your brain spent its energy reserves. Sleep as much as you need. Appetite may be returning.",
				Mental:   "You may feel depressed, anxious, or empty. This is not reality - this is the drug debt being repaid. It's temporary.",
				Reframe:  "The low you feel isn't because life without cocaine is empty. It's because cocaine emptied you. Non-users don't feel this way because they have nothing to recover from.",
				Reminder: "You're not losing a source of pleasure. You're escaping a source of pain that disguised itself as pleasure.",
			},
			{
				Day:      2,
				Title:    "Day 2: The Fog",
				Physical: "Fatigue continues. Headaches possible. Your body is working hard to rebalance. Let it.",
				Mental:   "Concentration is difficult. Motivation is low. This is temporary brain chemistry, not your new reality.",
				Reframe:  "Right now your brain is like a factory restocking supplies after they were all stolen. Of course production is slow. But it's rebuilding.",
				Reminder: "Cocaine never made you happy. It made you briefly high while making your baseline happiness lower and lower.",
			},
			{
				Day:      3,
				Title:    "Day 3: Cravings Peak",
				Physical: "Energy still low. Sleep patterns disrupted. Physical symptoms beginning to ease.",
				Mental:   "Cravings may be intense today. Your brain is looking for the shortcut it's used to. Don't give it one.",
				Reframe:  "A craving isn't a sign you need cocaine. It's a sign your brain is healing from cocaine. The craving is the addiction dying, not proof that it should live.",
				Reminder: "Every craving you don't act on makes the next one weaker. You're not fighting forever - just for now.",
			},
			{
				Day:      4,
				Title:    "Day 4: The Turn",
				Physical: "Energy beginning to return naturally. Appetite normalizing. Body remembering how to function.",
				Mental:   "Cravings beginning to space out. You may have longer periods of normalcy.",
				Reframe:  "Notice the moments when you're not thinking about cocaine. They're growing. Your brain is rewiring in real time.",
				Reminder: "You never needed cocaine to live your life before you discovered it. You don't need it now. You just forgot.",
			},
			{
				Day:      5,
				Title:    "Day 5: Natural Energy Returns",
				Physical: "Genuine energy starting to emerge. Sleep improving. Body continuing to restore.",
				Mental:   "Mood stabilizing. The extreme lows are lifting. This is your brain healing.",
				Reframe:  "The energy you're starting to feel isn't a substitute for cocaine energy - it's real energy. Sustainable. Not borrowed.",
				Reminder: "You're not white-knuckling through life. You're returning to the life you had before cocaine complicated everything.",
			},
			{
				Day:      6,
				Title:    "Day 6: Clarity Breaks Through",
				Physical: "Significant improvement in physical wellbeing. Your heart is thanking you. Your sinuses are healing.",
				Mental:   "You may experience moments of genuine happiness or contentment - from nothing in particular. This is normal. This is how non-users feel.",
				Reframe:  "That random moment of feeling okay? That's your natural reward system coming back online. It will get stronger and more frequent.",
				Reminder: "Cocaine sold you a fake version of what you're now starting to feel naturally. Why pay for a knockoff when you have the real thing?",
			},
			{
				Day:      7,
				Title:    "Day 7: One Week Free",
				Physical: "Major physical symptoms resolved. Body stabilizing. Sleep more regular.",
				Mental:   "The worst is behind you. Cravings are less intense and less frequent. You're proving you don't need it.",
				Reframe:  "You haven't survived a week without cocaine. You've lived a week without poisoning yourself. That's not endurance - that's just sanity.",
				Reminder: "Look back at day 1. Look where you are now. The direction is undeniable. Keep going.",
			},
			{
				Day:      14,
				Title:    "Day 14: Brain Healing",
				Physical: "Continued physical recovery. Cardiovascular system repairing. Energy sustainable.",
				Mental:   "Dopamine regulation improving. Able to find pleasure in normal activities again.",
				Reframe:  "Your ability to enjoy a good meal, a conversation, a sunset - cocaine was stealing that from you. You're getting it back.",
				Reminder: "Cocaine users spend their lives chasing a high while missing actual life. You're no longer missing your own life.",
			},
			{
				Day:      21,
				Title:    "Day 21: Psychological Shift",
				Physical: "Brain chemistry significantly rebalanced. Natural energy stable. Physical cravings rare.",
				Mental:   "The thought patterns are changing. Cocaine feels less like something you're avoiding and more like something that's no longer relevant.",
				Reframe:  "You're not an 'addict in recovery.' You're a person who made a mistake, learned from it, and moved on.",
				Reminder: "The person who thought they needed cocaine was misinformed. The person you're becoming knows better.",
			},
			{
				Day:      30,
				Title:    "Day 30: One Month Free",
				Physical: "Significant dopamine receptor recovery. Heart function improved. Sinuses healed. Sleep normalized.",
				Mental:   "New baseline established. Genuine contentment possible. The cocaine chapter is closing.",
				Reframe:  "You haven't been 'sober for 30 days.' You've been living normally for 30 days. Normal people don't count days since they poisoned themselves.",
				Reminder: "This is freedom. Not restriction. Not deprivation. Freedom.",
			},
			{
				Day:      60,
				Title:    "Day 60: New Normal",
				Physical: "Brain fully capable of normal dopamine production. Physical recovery substantial.",
				Mental:   "Cocaine rarely crosses your mind. When it does, it's with clarity, not temptation.",
				Reframe:  "You've gone from 'can't have cocaine' to 'don't want cocaine.' That's not willpower - that's understanding.",
				Reminder: "The trap only works on people who don't see it. You see it now. You're free.",
			},
			{
				Day:      90,
				Title:    "Day 90: Complete Freedom",
				Physical: "Full physical recovery. Energy, sleep, appetite all normalized. Body restored.",
				Mental:   "Cocaine is irrelevant to your life now. You may feel compassion for those still trapped.",
				Reframe:  "You didn't beat addiction through strength. You escaped it through understanding. The trap is behind you.",
				Reminder: "You gained everything and lost nothing. The life cocaine promised was always a lie. The life you have now is real.",
			},
		},
	},
}
