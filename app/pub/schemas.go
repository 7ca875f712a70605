package pub

// top level record names must stay consistent with msgType.String()
const (
	listingsSchema = `
		{
			"type": "record",
			"name": "Listings",
			"namespace": "org.bnbchain.nft.model.avro",
			"fields": [
				{ "name": "height", "type": "long" },
				{ "name": "timestamp", "type": "long" },
				{ "name": "numOfMsgs", "type": "int" },
				{ "name": "listings", "type": {
					"type": "array",
					"items":
						{
							"type": "record",
							"name": "Listing",
							"namespace": "org.bnbchain.nft.model.avro",
							"fields": [
								{ "name": "txHash", "type": "string" },
								{ "name": "action", "type": "string" },
								{ "name": "listing", "type": "string" },
								{ "name": "seller", "type": "string" },
								{ "name": "buyer", "type": "string" },
								{ "name": "collection", "type": "string" },
								{ "name": "asset", "type": "string" },
								{ "name": "price", "type": "long" },
								{ "name": "fee", "type": "long" },
								{ "name": "timestamp", "type": "long" }
							]
						}
					}
				}
			]
		}
	`

	collectionsSchema = `
		{
			"type": "record",
			"name": "Collections",
			"namespace": "org.bnbchain.nft.model.avro",
			"fields": [
				{ "name": "height", "type": "long" },
				{ "name": "timestamp", "type": "long" },
				{ "name": "numOfMsgs", "type": "int" },
				{ "name": "collections", "type": {
					"type": "array",
					"items":
						{
							"type": "record",
							"name": "Collection",
							"namespace": "org.bnbchain.nft.model.avro",
							"fields": [
								{ "name": "txHash", "type": "string" },
								{ "name": "collection", "type": "string" },
								{ "name": "updateAuthority", "type": "string" },
								{ "name": "name", "type": "string" },
								{ "name": "uri", "type": "string" },
								{ "name": "timestamp", "type": "long" }
							]
						}
					}
				}
			]
		}
	`
)
