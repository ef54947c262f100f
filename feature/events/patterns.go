package events

import "regexp"

// Lua event calls:
//
//	AddEventHandler / TriggerEvent / TriggerClientEvent / TriggerServerEvent
//	RegisterNetEvent / RegisterServerEvent
var luaEvents = regexp.MustCompile(
	`(?m)(?:^|[ \t])(AddEventHandler|Trigger(?:Client|Server)?Event|Register(?:Net|Server)Event)` +
		`\(\s*["']([^"']+)["']\s*[,)]`,
)

// JS event calls additionally cover the runtime aliases:
//
//	on / onNet / emit / emitNet
//	addEventListener / addNetEventListener
//	TriggerLatentClientEvent / TriggerLatentServerEvent
var jsEvents = regexp.MustCompile(
	`(?m)(?:^|[ \t])(on|onNet|emit|emitNet` +
		`|add(?:Net)?EventListener|AddEventHandler` +
		`|Trigger(?:(?:Latent)?(?:Client|Server))?Event` +
		`|Register(?:Net|Server)Event)` +
		`\(\s*["']([^"']+)["']\s*[,)]`,
)

var handlerFuncs = map[string]bool{
	"AddEventHandler":     true,
	"on":                  true,
	"onNet":               true,
	"addEventListener":    true,
	"addNetEventListener": true,
}

var emitterFuncs = map[string]bool{
	"TriggerEvent":             true,
	"TriggerClientEvent":       true,
	"TriggerServerEvent":       true,
	"emit":                     true,
	"emitNet":                  true,
	"TriggerLatentClientEvent": true,
	"TriggerLatentServerEvent": true,
}

var registerFuncs = map[string]bool{
	"RegisterNetEvent":    true,
	"RegisterServerEvent": true,
}

// DefaultIgnoredEvents are runtime and stock-resource events that are
// expected to have no matching emitter or handler inside the scanned tree.
// Globs use * and ?.
var DefaultIgnoredEvents = []string{
	"__cfx_internal:*",
	// NUI Callback Events (JS)
	"__cfx_nui:*",

	// Core events
	"gameEventTriggered",
	"onClientResourceStart",
	"onClientResourceStop",
	"onResourceStart",
	"onResourceStarting",
	"onResourceStop",
	"onServerResourceStart",
	"onServerResourceStop",
	"onResourceListRefresh",
	"playerConnecting",
	"playerDropped",
	"populationPedCreating",
	"rconCommand",

	// OneSync events
	"weaponDamageEvent",
	"vehicleComponentControlEvent",
	"respawnPlayerPedEvent",
	"explosionEvent",
	"entityCreated",
	"entityCreating",
	"entityRemoved",

	// OneSync Bigmode/infinity events
	"playerEnteredScope",
	"playerLeftScope",

	// baseevents
	"baseevents:*",

	// chat
	"chatMessage",
	"chat:*",

	// sessionmanager
	"hostingSession",
	"hostedSession",
	"sessionHostResult",

	// spawnmanager
	"playerSpawned",

	// mapmanager
	"mapmanager:*",
	"onClientMapStart",
	"onClientMapStop",
	"onClientGameTypeStart",
	"onClientGameTypeStop",
	"onMapStart",
	"onMapStop",
	"onGameTypeStart",
	"onGameTypeStop",
}
