package api

const version = "v1"
const prefix = "/api/" + version

func (s *server) bindRoutes() *server {
	r := s.router
	r.Use(s.throttle)

	// version routes
	r.HandleFunc("/version", s.handleVersionReq()).
		Methods("GET")
	r.HandleFunc("/node_version", s.handleNodeVersionReq()).
		Methods("GET")

	// market routes
	r.HandleFunc(prefix+"/market/policy", s.handlePolicyReq(s.cdc, s.ctx)).
		Methods("GET")
	r.HandleFunc(prefix+"/market/listings/{address}", s.handleListingReq(s.cdc, s.ctx)).
		Methods("GET")
	r.HandleFunc(prefix+"/market/sellers/{seller}/listings", s.handleSellerListingsReq(s.cdc, s.ctx)).
		Methods("GET")

	// nft routes
	r.HandleFunc(prefix+"/nft/assets/{collection}/{asset}", s.handleAssetReq(s.cdc, s.ctx)).
		Methods("GET")

	return s
}
