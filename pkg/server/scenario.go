package server

import (
	"fmt"
	"regexp"
)

// Official scenario identifiers shipped with the base game.
const (
	ScenarioConflictEveron         = "{ECC61978EDCC2B5A}Missions/23_Campaign.conf"
	ScenarioConflictNorthernEveron = "{C700DB41F0C546E1}Missions/23_Campaign_NorthCentral.conf"
	ScenarioConflictSouthernEveron = "{28802A76E7FF92BA}Missions/23_Campaign_SWCoast.conf"
	ScenarioConflictWesternEveron  = "{94992A3D7CE4FF8A}Missions/23_Campaign_Western.conf"
	ScenarioConflictMontignac      = "{FDE33AFE2ED7875B}Missions/23_Campaign_Montignac.conf"
	ScenarioConflictArland         = "{C41618FD18E9D714}Missions/23_Campaign_Arland.conf"
	ScenarioCombatOpsArland        = "{DAA03C6E6099D50F}Missions/24_CombatOps.conf"
	ScenarioCombatOpsEveron        = "{DFAC5FABD11F2390}Missions/26_CombatOpsEveron.conf"
	ScenarioGameMasterEveron       = "{59AD59368755F41A}Missions/21_GM_Eden.conf"
	ScenarioGameMasterArland       = "{2BBBE828037C6F4B}Missions/22_GM_Arland.conf"
)

// scenarioIDPattern matches the engine's resource reference form: a
// 16-digit hexadecimal resource GUID in braces followed by the mission
// resource path.
var scenarioIDPattern = regexp.MustCompile(`^\{([0-9A-Fa-f]{16})\}(.+)$`)

// ScenarioInfo pairs a scenario identifier with a display name.
type ScenarioInfo struct {
	Name string
	ID   string
}

// OfficialScenarios returns the scenarios shipped with the base game in
// a stable order suitable for menus.
func OfficialScenarios() []ScenarioInfo {
	return []ScenarioInfo{
		{Name: "Conflict - Everon", ID: ScenarioConflictEveron},
		{Name: "Conflict - Northern Everon", ID: ScenarioConflictNorthernEveron},
		{Name: "Conflict - Southern Everon", ID: ScenarioConflictSouthernEveron},
		{Name: "Conflict - Western Everon", ID: ScenarioConflictWesternEveron},
		{Name: "Conflict - Montignac", ID: ScenarioConflictMontignac},
		{Name: "Conflict - Arland", ID: ScenarioConflictArland},
		{Name: "Combat Ops - Arland", ID: ScenarioCombatOpsArland},
		{Name: "Combat Ops - Everon", ID: ScenarioCombatOpsEveron},
		{Name: "Game Master - Everon", ID: ScenarioGameMasterEveron},
		{Name: "Game Master - Arland", ID: ScenarioGameMasterArland},
	}
}

// SplitScenarioID splits a scenario identifier into its resource GUID
// and mission path. It returns an error when the identifier does not
// follow the "{GUID}Path" form.
func SplitScenarioID(id string) (guid, path string, err error) {
	m := scenarioIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", "", fmt.Errorf("malformed scenario identifier %q: expected {GUID}Path form", id)
	}
	return m[1], m[2], nil
}

// FormatScenarioID assembles a scenario identifier from a resource GUID
// and a mission path.
func FormatScenarioID(guid, path string) string {
	return "{" + guid + "}" + path
}

// IsValidScenarioID reports whether id follows the "{GUID}Path" form.
func IsValidScenarioID(id string) bool {
	return scenarioIDPattern.MatchString(id)
}
