package services

import (
	"strings"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

// Curated content served when the text generator is unavailable. Buckets
// are keyed by deity or zodiac sign; "other" and "leo" are the defaults.

var dailyMessages = map[domain.Deity][]string{
	domain.DeityShiva: {
		"Like the Ganga flowing from Shiva's locks, let grace flow through your day. Stillness is your strength. Om Namah Shivaya 🙏",
		"Mahadev reminds us that every ending clears the ground for a new beginning. Release what no longer serves you and rest in His stillness.",
		"Sit for a moment in silence today. In that silence Shiva waits, formless and infinite, holding you with quiet compassion.",
	},
	domain.DeityKrishna: {
		"Krishna's flute plays for every heart that listens. Do your work with love today and leave the fruits in His hands. Radhe Krishna 🙏",
		"As Krishna guided Arjuna, He guides you. Act with courage, stay rooted in dharma, and let joy be your offering.",
		"Let today be a dance of devotion. Every kind word and every honest effort is a flower placed at Krishna's feet.",
	},
	domain.DeityVishnu: {
		"Narayana preserves all that is good. Trust that you are held and protected as you walk the path of dharma today. Om Namo Narayanaya 🙏",
		"Like Vishnu resting on the cosmic ocean, find calm beneath the waves of the day. Balance is itself a blessing.",
		"Whenever dharma declines, the Lord rises to restore it. Be a small light of righteousness wherever you stand today.",
	},
	domain.DeityGanesh: {
		"May Ganapati clear every obstacle from your path today. Begin each task with a humble prayer and a joyful heart. Ganapati Bappa Morya 🙏",
		"Ganesha's large ears listen more than they speak. Listen deeply today and wisdom will find you.",
		"Every new beginning is blessed by Vighnaharta. Take the first step with faith and let Him smooth the way.",
	},
	domain.DeityDurga: {
		"The Divine Mother rides beside you. Face today's challenges with the courage of Durga and the tenderness of a mother. Jai Mata Di 🙏",
		"Durga's many arms remind us that strength takes many forms: patience, kindness and resolve. Draw on all of them today.",
		"Whatever darkness you face, Ma Durga's light is stronger. Stand tall, breathe deeply and trust her protection.",
	},
	domain.DeityLakshmi: {
		"May Lakshmi bless your home with abundance, peace and gratitude. Give freely today and watch grace return to you. Om Shreem 🙏",
		"True wealth is a contented heart. Honor Lakshmi by cherishing what you have and sharing it with others.",
		"Light a lamp today for Mahalakshmi. Where there is cleanliness, gratitude and generosity, she loves to dwell.",
	},
	domain.DeityOther: {
		"The divine presence is always with you, guiding and protecting your path. Trust in the cosmic plan and move forward with faith. 🙏",
		"Every breath is a prayer and every moment is sacred. Walk gently today and let devotion guide your steps.",
		"The light you seek is already within you. Pause, breathe and let it shine through your actions today.",
	},
}

var devotionalQuotes = map[domain.Deity][]string{
	domain.DeityShiva: {
		"Om Namah Shivaya - The sacred mantra that dissolves all limitations",
		"Shiva is the eternal consciousness - formless, infinite, and absolute",
		"In Shiva's meditation, find the peace that surpasses understanding",
	},
	domain.DeityKrishna: {
		"Radhe Krishna! Love is the highest form of devotion",
		"Krishna teaches: 'Do your work without attachment to results'",
		"The divine flute calls - listen with your heart, not your ears",
	},
	domain.DeityVishnu: {
		"Om Namo Bhagavate Vasudevaya - Salutations to the all-pervading Vishnu",
		"Vishnu preserves and protects all who walk the path of dharma",
		"In Vishnu's cosmic form, see the infinite nature of the divine",
	},
	domain.DeityGanesh: {
		"Ganapati Bappa Morya! Remover of all obstacles",
		"Ganesha's wisdom opens the door to all possibilities",
		"With Ganesha's grace, every journey becomes blessed",
	},
	domain.DeityDurga: {
		"Jai Mata Di! The divine mother protects and empowers",
		"Durga's strength is the strength of all mothers",
		"In Durga's fierce compassion, find your inner power",
	},
	domain.DeityLakshmi: {
		"Om Shreem Mahalakshmiyei Namaha - Goddess of abundance",
		"Lakshmi blesses those who live with gratitude and generosity",
		"True wealth flows from inner abundance and service to others",
	},
	domain.DeityOther: {
		"The divine dwells within - recognize it, honor it, let it shine",
		"In devotion, we find the bridge between finite and infinite",
		"Every moment is an opportunity to connect with the divine",
	},
}

// curatedBucket returns the bucket for deity, defaulting to "other".
func curatedBucket(tables map[domain.Deity][]string, deity domain.Deity) []string {
	if b, ok := tables[deity]; ok {
		return b
	}
	return tables[domain.DeityOther]
}

// ZodiacSigns lists the twelve signs in order.
var ZodiacSigns = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

const defaultSign = "leo"

// NormalizeSign lowercases sign and maps unknown values to "leo".
func NormalizeSign(sign string) string {
	s := strings.ToLower(strings.TrimSpace(sign))
	for _, z := range ZodiacSigns {
		if z == s {
			return s
		}
	}
	return defaultSign
}

var weeklyHoroscopes = map[string]string{
	"aries":       "Your fire is strong this week. Channel it into steady effort rather than haste. Begin mornings with a short prayer to Hanuman and let patience temper your courage.",
	"taurus":      "A calm, grounded week awaits. Tend to home and family with care. Gratitude for small comforts will open the door to deeper contentment.",
	"gemini":      "Your mind is bright and curious. Choose words with kindness and spend a few quiet minutes each day in breath awareness to gather scattered thoughts.",
	"cancer":      "Emotions may run deep this week. Let devotion be your shelter. Offering water to the Sun at dawn can bring clarity and warmth.",
	"leo":         "This week brings opportunities for spiritual growth. Trust your intuition and embrace the positive changes coming your way. Focus on inner peace and gratitude.",
	"virgo":       "Order and service bring you joy. Offer your work as worship and release the need for perfection. Ganesha's grace smooths the details.",
	"libra":       "Harmony in relationships is highlighted. Listen more than you speak and seek balance between giving and receiving. Lakshmi favors a peaceful home.",
	"scorpio":     "A week for inner transformation. Let go of old hurts with a simple practice of forgiveness. Chanting Om Namah Shivaya can steady the heart.",
	"sagittarius": "Your search for meaning deepens. Study a verse of the Gita each day and reflect on how it speaks to your path.",
	"capricorn":   "Steady effort bears quiet fruit. Honor your duties without worry about results, and make time for rest in the evenings.",
	"aquarius":    "Ideas and friendships flourish. Use your gifts in service to others and the week will feel light and purposeful.",
	"pisces":      "Your compassion shines. Protect your energy with gentle boundaries and let music or bhajans restore your spirit.",
}

// gitaText is a sloka rendering in one language.
type gitaText struct {
	Translation string
	Meaning     string
}

type gitaVerse struct {
	Chapter         int
	Verse           int
	Sanskrit        string
	Transliteration string
	Texts           map[string]gitaText
}

// Translation languages; anything else reads the English text.
const (
	gitaEnglish  = "english"
	gitaHindi    = "hindi"
	gitaTelugu   = "telugu"
	gitaSanskrit = "sanskrit"
)

// gitaLanguage maps a requested language to one the curated verses carry.
func gitaLanguage(lang string) string {
	switch l := strings.ToLower(strings.TrimSpace(lang)); l {
	case gitaHindi, gitaTelugu, gitaSanskrit:
		return l
	}
	return gitaEnglish
}

func (v gitaVerse) render(lang string) domain.GitaSloka {
	t, ok := v.Texts[gitaLanguage(lang)]
	if !ok {
		t = v.Texts[gitaEnglish]
	}
	return domain.GitaSloka{
		Chapter:         v.Chapter,
		Verse:           v.Verse,
		Sanskrit:        v.Sanskrit,
		Transliteration: v.Transliteration,
		Translation:     t.Translation,
		Meaning:         t.Meaning,
	}
}

var gitaVerses = []gitaVerse{
	{
		Chapter:         2,
		Verse:           47,
		Sanskrit:        "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन। मा कर्मफलहेतुर्भूर्मा ते सङ्गोऽस्त्वकर्मणि॥",
		Transliteration: "karmaṇy evādhikāras te mā phaleṣu kadācana mā karma-phala-hetur bhūr mā te saṅgo 'stv akarmaṇi",
		Texts: map[string]gitaText{
			gitaEnglish:  {"You have the right to perform your prescribed duties, but you are not entitled to the fruits of your actions.", "Focus on your actions without attachment to results. This is the essence of Karma Yoga."},
			gitaHindi:    {"कर्म करने में तुम्हारा अधिकार है, फल में कभी नहीं।", "बिना फल की चिंता किए कर्म करते रहो। यही कर्म योग का सार है।"},
			gitaTelugu:   {"కర్మ చేయడంలో నీకు అధికారం ఉంది, ఫలంలో ఎప్పుడూ లేదు.", "ఫలితం గురించి చింతించకుండా కర్మ చేయండి. ఇదే కర్మ యోగం యొక్క సారాంశం."},
			gitaSanskrit: {"कर्मण्येवाधिकारस्ते मा फलेषु कदाचन।", "कर्मयोगस्य सारोऽयम् - फलासक्तिं विना कर्म कुरु।"},
		},
	},
	{
		Chapter:         2,
		Verse:           14,
		Sanskrit:        "मात्रास्पर्शास्तु कौन्तेय शीतोष्णसुखदुःखदाः। आगमापायिनोऽनित्यास्तांस्तितिक्षस्व भारत॥",
		Transliteration: "mātrā-sparśās tu kaunteya śītoṣṇa-sukha-duḥkha-dāḥ āgamāpāyino 'nityās tāṁs titikṣasva bhārata",
		Texts: map[string]gitaText{
			gitaEnglish:  {"The contact of senses with their objects gives rise to feelings of cold, heat, pleasure and pain. They come and go, being impermanent. Bear them patiently.", "All experiences are temporary. Learn to remain equanimous through life's ups and downs."},
			gitaHindi:    {"इंद्रियों का विषयों से संपर्क सर्दी-गर्मी, सुख-दुख देता है। ये आते-जाते हैं। इन्हें सहन करो।", "सभी अनुभव अस्थायी हैं। जीवन के उतार-चढ़ाव में समभाव रखना सीखो।"},
			gitaTelugu:   {"ఇంద్రియాలు వస్తువులతో సంపర్కం చలి-వేడి, సుఖ-దుఃఖాలను ఇస్తుంది. వారు వస్తారు, పోతారు. వాటిని సహించు.", "అన్ని అనుభవాలు తాత్కాలికం. జీవితంలో సమతుల్యత నేర్చుకోండి."},
			gitaSanskrit: {"मात्रास्पर्शास्तु कौन्तेय शीतोष्णसुखदुःखदाः।", "सर्वाणि अनुभवानि अनित्यानि। समत्वं शिक्षस्व।"},
		},
	},
	{
		Chapter:         4,
		Verse:           7,
		Sanskrit:        "यदा यदा हि धर्मस्य ग्लानिर्भवति भारत। अभ्युत्थानमधर्मस्य तदात्मानं सृजाम्यहम्॥",
		Transliteration: "yadā yadā hi dharmasya glānir bhavati bhārata abhyutthānam adharmasya tadātmānaṁ sṛjāmy aham",
		Texts: map[string]gitaText{
			gitaEnglish:  {"Whenever there is a decline in righteousness and an increase in unrighteousness, I manifest Myself.", "The Divine protects dharma in every age. Have faith that righteousness will always prevail."},
			gitaHindi:    {"जब-जब धर्म की हानि और अधर्म की वृद्धि होती है, तब-तब मैं स्वयं को प्रकट करता हूँ।", "भगवान हर युग में धर्म की रक्षा करते हैं। विश्वास रखो कि सत्य की जीत होगी।"},
			gitaTelugu:   {"ధర్మానికి హాని, అధర్మానికి వృద్ధి జరిగినప్పుడు, నేను నన్ను ప్రకటించుకుంటాను.", "భగవంతుడు ప్రతి యుగంలో ధర్మాన్ని రక్షిస్తాడు. న్యాయం గెలుస్తుందని నమ్మండి."},
			gitaSanskrit: {"यदा यदा हि धर्मस्य ग्लानिर्भवति भारत।", "भगवान् धर्मं रक्षति सर्वदा। श्रद्धां धारय।"},
		},
	},
	{
		Chapter:         6,
		Verse:           5,
		Sanskrit:        "उद्धरेदात्मनात्मानं नात्मानमवसादयेत्। आत्मैव ह्यात्मनो बन्धुरात्मैव रिपुरात्मनः॥",
		Transliteration: "uddhared ātmanātmānaṁ nātmānam avasādayet ātmaiva hy ātmano bandhur ātmaiva ripur ātmanaḥ",
		Texts: map[string]gitaText{
			gitaEnglish:  {"One must elevate oneself by one's own mind, not degrade oneself. The mind can be the friend or the enemy of the self.", "You have the power to uplift or bring yourself down. Choose thoughts that elevate your spirit."},
			gitaHindi:    {"अपने मन से स्वयं को ऊपर उठाओ, गिराओ नहीं। मन ही आत्मा का मित्र है और मन ही शत्रु।", "तुम्हारे पास खुद को ऊपर उठाने या गिराने की शक्ति है। ऐसे विचार चुनो जो आत्मा को ऊंचा करें।"},
			gitaTelugu:   {"తన మనస్సుతో తనను తాను ఉద్ధరించుకోవాలి, పతనం చెందకూడదు. మనస్సే స్నేహితుడు, మనస్సే శత్రువు.", "మిమ్మల్ని మీరు ఎదగడానికి లేదా పడిపోవడానికి శక్తి మీ దగ్గరే ఉంది. ఆత్మను ఉన్నతం చేసే ఆలోచనలు ఎంచుకోండి."},
			gitaSanskrit: {"उद्धरेदात्मनात्मानं नात्मानमवसादयेत्।", "स्वस्य उन्नतये वा पतनाय शक्तिः त्वय्येव। सद्विचारान् चिनुहि।"},
		},
	},
	{
		Chapter:         9,
		Verse:           22,
		Sanskrit:        "अनन्याश्चिन्तयन्तो मां ये जनाः पर्युपासते। तेषां नित्याभियुक्तानां योगक्षेमं वहाम्यहम्॥",
		Transliteration: "ananyāś cintayanto māṁ ye janāḥ paryupāsate teṣāṁ nityābhiyuktānāṁ yoga-kṣemaṁ vahāmy aham",
		Texts: map[string]gitaText{
			gitaEnglish:  {"Those who worship Me with exclusive devotion, meditating on Me without any other thought, to them I carry what they lack and preserve what they have.", "Complete surrender to the Divine brings total protection and provision. Trust in divine care."},
			gitaHindi:    {"जो अनन्य भक्ति से मेरा चिंतन करते हुए मेरी उपासना करते हैं, उनका योगक्षेम मैं वहन करता हूँ।", "पूर्ण समर्पण से दैवी सुरक्षा और प्रदान मिलता है। ईश्वर पर विश्वास रखो।"},
			gitaTelugu:   {"అనన్య భక్తితో నన్ను ధ్యానిస్తూ ఆరాధించే వారి యోగక్షేమం నేను భరిస్తాను.", "పూర్తి శరణాగతితో దైవ రక్షణ మరియు అందుకుంటారు. దైవంపై నమ్మకం ఉంచండి."},
			gitaSanskrit: {"अनन्याश्चिन्तयन्तो मां ये जनाः पर्युपासते।", "पूर्णशरणागत्या दैवी रक्षा प्राप्यते। ईश्वरे विश्वसिहि।"},
		},
	},
	{
		Chapter:         18,
		Verse:           66,
		Sanskrit:        "सर्वधर्मान्परित्यज्य मामेकं शरणं व्रज। अहं त्वां सर्वपापेभ्यो मोक्षयिष्यामि मा शुचः॥",
		Transliteration: "sarva-dharmān parityajya mām ekaṁ śaraṇaṁ vraja ahaṁ tvāṁ sarva-pāpebhyo mokṣayiṣyāmi mā śucaḥ",
		Texts: map[string]gitaText{
			gitaEnglish:  {"Abandon all varieties of dharma and surrender unto Me alone. I shall deliver you from all sinful reactions; do not grieve.", "Complete surrender to the Divine is the ultimate path. Let go of all worries and trust in divine grace."},
			gitaHindi:    {"सभी धर्मों को त्यागकर केवल मेरी शरण में आ जाओ। मैं तुम्हें सब पापों से मुक्त करूंगा, शोक मत करो।", "ईश्वर के प्रति पूर्ण समर्पण ही परम मार्ग है। सभी चिंताएं छोड़ो और दैवी कृपा पर विश्वास रखो।"},
			gitaTelugu:   {"అన్ని ధర్మాలను వదిలి నా శరణు మాత్రమే రా. నేను నిన్ను అన్ని పాపాల నుండి విముక్తి చేస్తాను, దుఃఖించకు.", "దైవానికి పూర్తి శరణాగతి అంతిమ మార్గం. అన్ని ఆందోళనలు వదిలి దైవ కృపను నమ్ముకోండి."},
			gitaSanskrit: {"सर्वधर्मान्परित्यज्य मामेकं शरणं व्रज।", "पूर्णशरणागतिः परमो मार्गः। सर्वाः चिन्ताः त्यज दैवीकृपायां विश्वसिहि।"},
		},
	},
	{
		Chapter:         12,
		Verse:           13,
		Sanskrit:        "अद्वेष्टा सर्वभूतानां मैत्रः करुण एव च। निर्ममो निरहङ्कारः समदुःखसुखः क्षमी॥",
		Transliteration: "adveṣṭā sarva-bhūtānāṁ maitraḥ karuṇa eva ca nirmamo nirahaṅkāraḥ sama-duḥkha-sukhaḥ kṣamī",
		Texts: map[string]gitaText{
			gitaEnglish:  {"One who is free from enmity towards all beings, friendly and compassionate, without possessiveness and ego, equal in pleasure and pain, and forgiving.", "These are the qualities of a true devotee. Cultivate compassion and equanimity in your heart."},
			gitaHindi:    {"जो सभी प्राणियों से द्वेष नहीं रखता, मित्रवत और करुणामय है, अहंकार रहित है, सुख-दुख में समान और क्षमाशील है।", "ये सच्चे भक्त के गुण हैं। अपने हृदय में करुणा और समता विकसित करो।"},
			gitaTelugu:   {"అన్ని ప్రాణులపై ద్వేషం లేని, స్నేహపూర్వక మరియు కరుణామయుడు, అహంకారం లేని, సుఖ-దుఃఖాలలో సమానంగా, క్షమాశీలుడు.", "ఇవి నిజమైన భక్తుని లక్షణాలు. మీ హృదయంలో కరుణ మరియు సమత్వం పెంచుకోండి."},
			gitaSanskrit: {"अद्वेष्टा सर्वभूतानां मैत्रः करुण एव च।", "एते सद्भक्तस्य गुणाः। करुणां समतां च हृदये पोषय।"},
		},
	},
}

// mantras maps deity and purpose to a suggested mantra. Unknown deities use
// shiva; unknown purposes use "general".
var mantras = map[domain.Deity]map[string]string{
	domain.DeityShiva: {
		"general":    "Om Namah Shivaya - The five-syllable mantra of Lord Shiva, bestows peace and removes obstacles.",
		"peace":      "Om Namah Shivaya - Chant 108 times for inner peace and clarity.",
		"protection": "Om Tryambakam Yajamahe - The Maha Mrityunjaya mantra, Shiva's protective mantra.",
	},
	domain.DeityKrishna: {
		"general":    "Hare Krishna, Hare Krishna, Krishna Krishna, Hare Hare - The Mahamantra for divine love.",
		"peace":      "Om Namo Bhagavate Vasudevaya - Salutations to Lord Krishna, brings peace.",
		"protection": "Krishnaya Vasudevaya Haraye Paramatmane - For Krishna's protection.",
	},
	domain.DeityVishnu: {
		"general":    "Om Namo Narayanaya - Sacred mantra of Lord Vishnu, the preserver.",
		"peace":      "Om Vishnave Namah - Simple and powerful Vishnu mantra.",
		"protection": "Om Namo Bhagavate Vasudevaya - For Vishnu's divine protection.",
	},
	domain.DeityGanesh: {
		"general": "Om Gam Ganapataye Namaha - Remove obstacles and bring wisdom.",
		"success": "Om Ganeshaya Namah - For success in new beginnings.",
		"wisdom":  "Om Vakratunda Mahakaya - Ganesha's wisdom mantra.",
	},
	domain.DeityDurga: {
		"general":    "Om Dum Durgayei Namaha - Powerful protection and strength.",
		"protection": "Sarva Mangala Mangalye - Durga's protective mantra.",
		"strength":   "Ya Devi Sarva Bhuteshu - Invoke the Goddess in all forms.",
	},
	domain.DeityLakshmi: {
		"general":    "Om Shreem Mahalakshmiyei Namaha - Invoke abundance and prosperity.",
		"wealth":     "Om Hreem Shreem Kleem Mahalakshmi Namaha - For material and spiritual wealth.",
		"prosperity": "Om Shreem Lakshmi Namah - Simple Lakshmi mantra.",
	},
}
