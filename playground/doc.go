// Package playground serves path queries over HTTP for interactive
// inspection of the water pathfinder.
//
// Endpoints
//
//	GET  /api/maps          map directories under the maps root
//	GET  /api/maps/{name}   dimensions, terrain and gateway graph of a map
//	POST /api/pathfind      one path query (PathRequest → PathResponse)
//	POST /api/cache/clear   drop every loaded world
//	GET  /api/schema        JSON schema of the request and response bodies
//	GET  /ws                websocket; every text message is a PathRequest
//	                        answered by a PathResponse or an ErrorResponse
//
// Worlds are loaded on first use and cached. Queries on one world are
// serialized, since a NavMesh is not safe for concurrent use.
package playground
