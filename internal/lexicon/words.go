package lexicon

// Built-in sentiment word lists. Deliberately small and common: the
// heuristic is a coarse baseline next to KNN, not a replacement for
// labeled data.

var builtinPositive = []string{
	"adorable", "adore", "amazing", "awesome", "beautiful", "best",
	"bliss", "brilliant", "celebrate", "charming", "cheerful", "cool",
	"delight", "delighted", "delicious", "enjoy", "enjoyed", "excellent",
	"excited", "exciting", "fantastic", "fabulous", "favorite", "fun",
	"genius", "glad", "good", "gorgeous", "grateful", "great", "happy",
	"incredible", "joy", "kind", "laugh", "like", "liked", "love",
	"loved", "lovely", "loving", "magnificent", "marvelous", "nice",
	"outstanding", "perfect", "pleasant", "pleased", "proud", "smile",
	"stunning", "succeed", "success", "superb", "sweet", "terrific",
	"thanks", "thrilled", "win", "winner", "wonderful", "wow", "yay",
}

var builtinNegative = []string{
	"angry", "annoyed", "annoying", "awful", "bad", "boring", "broke",
	"broken", "cry", "crying", "disappointed", "disappointing",
	"disaster", "disgusting", "dislike", "dreadful", "dull", "fail",
	"failed", "failure", "fear", "frustrated", "frustrating", "gross",
	"hate", "hated", "horrible", "hurt", "lame", "lose", "loser",
	"losing", "lost", "mad", "mess", "miserable", "nasty", "never",
	"pain", "painful", "pathetic", "poor", "rude", "ruin", "ruined",
	"sad", "scared", "sick", "slow", "sorry", "stupid", "suck", "sucks",
	"terrible", "tired", "trash", "ugly", "unhappy", "upset", "useless",
	"waste", "worthless", "worse", "worst", "wrong",
}
