package vocab

import "time"

var tiers = []tier{
	{
		difficulty: Easy,
		blurb:      "Short words (2-3 kana)",
		timing:     Timing{PerWord: 8 * time.Second, Session: 60 * time.Second},
		words: []Word{
			{"すし", "sushi"},
			{"うどん", "udon"},
			{"そば", "soba"},
			{"さけ", "sake"},
			{"みず", "mizu"},
			{"いぬ", "inu"},
			{"ねこ", "neko"},
			{"とり", "tori"},
			{"かに", "kani"},
			{"たこ", "tako"},
			{"さる", "saru"},
			{"くま", "kuma"},
			{"はし", "hashi"},
			{"ふね", "fune"},
			{"ほし", "hoshi"},
			{"かぜ", "kaze"},
			{"あめ", "ame"},
			{"ゆき", "yuki"},
			{"くも", "kumo"},
			{"にじ", "niji"},
		},
	},
	{
		difficulty: Normal,
		blurb:      "Everyday dishes (3-5 kana)",
		timing:     Timing{PerWord: 5 * time.Second, Session: 60 * time.Second},
		words: []Word{
			{"さしみ", "sashimi"},
			{"てんぷら", "tempura"},
			{"らーめん", "ra-men"},
			{"おにぎり", "onigiri"},
			{"たこやき", "takoyaki"},
			{"やきとり", "yakitori"},
			{"とんかつ", "tonkatsu"},
			{"みそしる", "misoshiru"},
			{"ぎょうざ", "gyouza"},
			{"かつどん", "katsudon"},
			{"にくじゃが", "nikujaga"},
			{"はんばーぐ", "hanba-gu"},
			{"かれーらいす", "kare-raisu"},
			{"おむらいす", "omuraisu"},
			{"すぱげってぃ", "supagetti"},
			{"ぴざ", "piza"},
			{"さらだ", "sarada"},
			{"すーぷ", "su-pu"},
			{"ぱん", "pan"},
			{"けーき", "ke-ki"},
		},
	},
	{
		difficulty: Hard,
		blurb:      "Long dishes with digraphs",
		timing:     Timing{PerWord: 3 * time.Second, Session: 60 * time.Second},
		words: []Word{
			{"おやこどん", "oyakodon"},
			{"ちゃわんむし", "chawanmushi"},
			{"しゃぶしゃぶ", "shabushabu"},
			{"すきやき", "sukiyaki"},
			{"おこのみやき", "okonomiyaki"},
			{"もんじゃやき", "monjayaki"},
			{"やきそば", "yakisoba"},
			{"ちゃーはん", "cha-han"},
			{"てりやき", "teriyaki"},
			{"からあげ", "karaage"},
			{"えびふらい", "ebifurai"},
			{"はんばーがー", "hanba-ga-"},
			{"すてーき", "sute-ki"},
			{"おーぶんとーすと", "o-bunto-suto"},
			{"ふれんちとーすと", "furenchito-suto"},
			{"ぱんけーき", "panke-ki"},
			{"どーなつ", "do-natsu"},
			{"ちょこれーと", "chokore-to"},
			{"あいすくりーむ", "aisukuri-mu"},
			{"ぷりん", "purin"},
		},
	},
}
