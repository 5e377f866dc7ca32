package service

// stopwords are common English words never offered for explanation.
var stopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "cannot": true, "could": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "him": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "itself": true, "just": true, "like": true, "made": true,
	"make": true, "many": true, "may": true, "me": true, "might": true,
	"more": true, "most": true, "much": true, "must": true, "my": true,
	"no": true, "nor": true, "not": true, "now": true, "of": true,
	"off": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "since": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "theirs": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "through": true,
	"to": true, "too": true, "under": true, "until": true, "up": true,
	"upon": true, "used": true, "uses": true, "using": true, "very": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "who": true, "whom": true,
	"why": true, "will": true, "with": true, "within": true, "without": true,
	"would": true, "you": true, "your": true, "yours": true,
	// frequent in technical prose but never worth a tooltip
	"however": true, "therefore": true, "example": true,
	"different": true, "various": true, "several": true, "often": true,
	"usually": true, "typically": true, "called": true, "known": true,
	"based": true, "given": true, "following": true,
	"number": true, "numbers": true, "value": true, "values": true,
	"part": true, "parts": true, "time": true, "times": true,
	"way": true, "ways": true, "thing": true, "things": true,
	"first": true, "second": true, "next": true, "last": true,
	"new": true, "old": true, "large": true, "small": true,
	"good": true, "well": true, "even": true, "still": true,
}
