package match

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/carddb"
)

// ContentHash is the 16-hex-digit digest of the card and ability
// registries, exchanged at connect to reject mismatched clients. Both
// registries are serialized deterministically (sorted by ID, as All()
// already guarantees) before hashing.
func ContentHash() string {
	cardDigest := md5.Sum([]byte(serializeCards()))
	abilityDigest := md5.Sum([]byte(serializeAbilities()))
	combined := hex.EncodeToString(cardDigest[:]) + ":" + hex.EncodeToString(abilityDigest[:])
	full := md5.Sum([]byte(combined))
	return hex.EncodeToString(full[:])[:16]
}

func serializeCards() string {
	out := ""
	for _, d := range carddb.All() {
		out += fmt.Sprintf("%s|%d|%d|%d|%d|%v|%v|%v|%d|%d|%v\n",
			d.DefID, d.Cost, d.Element, d.CardType, d.Life, d.IsUnique, d.IsFlying, d.IsElite,
			d.Armor, d.MaxCounters, d.AbilityIDs)
	}
	return out
}

func serializeAbilities() string {
	out := ""
	for _, a := range ability.All() {
		out += fmt.Sprintf("%s|%d|%d|%d|%d|%d|%d\n",
			a.ID, a.AbilityType, a.TargetType, a.Range, a.MinRange, a.Cooldown, a.Trigger)
	}
	return out
}
