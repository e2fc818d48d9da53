package sqlstore

// -----------------------------------------------------------------------------
// WRITE QUERIES
// -----------------------------------------------------------------------------

var upsertContactSQL = map[Dialect]string{
	MySQL: `
INSERT INTO contacts (id, name, email)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  name  = VALUES(name),
  email = VALUES(email)
`,
	SQLite: `
INSERT INTO contacts (id, name, email)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name  = excluded.name,
  email = excluded.email
`,
}

const propertyColumns = `id, street_address, neighborhood, city, state, description, rent_amount,
  bedrooms, bathrooms, floor_number, laundry, parking, doorman,
  garden, balcony, roof, cats_allowed, dogs_allowed, furnished, air_conditioning, dishwasher`

var upsertListingSQL = map[Dialect]string{
	MySQL: `
INSERT INTO properties
  (` + propertyColumns + `)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  street_address   = VALUES(street_address),
  neighborhood     = VALUES(neighborhood),
  city             = VALUES(city),
  state            = VALUES(state),
  description      = VALUES(description),
  rent_amount      = VALUES(rent_amount),
  bedrooms         = VALUES(bedrooms),
  bathrooms        = VALUES(bathrooms),
  floor_number     = VALUES(floor_number),
  laundry          = VALUES(laundry),
  parking          = VALUES(parking),
  doorman          = VALUES(doorman),
  garden           = VALUES(garden),
  balcony          = VALUES(balcony),
  roof             = VALUES(roof),
  cats_allowed     = VALUES(cats_allowed),
  dogs_allowed     = VALUES(dogs_allowed),
  furnished        = VALUES(furnished),
  air_conditioning = VALUES(air_conditioning),
  dishwasher       = VALUES(dishwasher)
`,
	SQLite: `
INSERT INTO properties
  (` + propertyColumns + `)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  street_address   = excluded.street_address,
  neighborhood     = excluded.neighborhood,
  city             = excluded.city,
  state            = excluded.state,
  description      = excluded.description,
  rent_amount      = excluded.rent_amount,
  bedrooms         = excluded.bedrooms,
  bathrooms        = excluded.bathrooms,
  floor_number     = excluded.floor_number,
  laundry          = excluded.laundry,
  parking          = excluded.parking,
  doorman          = excluded.doorman,
  garden           = excluded.garden,
  balcony          = excluded.balcony,
  roof             = excluded.roof,
  cats_allowed     = excluded.cats_allowed,
  dogs_allowed     = excluded.dogs_allowed,
  furnished        = excluded.furnished,
  air_conditioning = excluded.air_conditioning,
  dishwasher       = excluded.dishwasher
`,
}

var upsertTenancySQL = map[Dialect]string{
	MySQL: `
INSERT INTO tenancies (id, contact_id, property_id, start_date, end_date, rent_amount)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  contact_id  = VALUES(contact_id),
  property_id = VALUES(property_id),
  start_date  = VALUES(start_date),
  end_date    = VALUES(end_date),
  rent_amount = VALUES(rent_amount)
`,
	SQLite: `
INSERT INTO tenancies (id, contact_id, property_id, start_date, end_date, rent_amount)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  contact_id  = excluded.contact_id,
  property_id = excluded.property_id,
  start_date  = excluded.start_date,
  end_date    = excluded.end_date,
  rent_amount = excluded.rent_amount
`,
}

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Listings with their active tenancy. The join condition keeps listings
// without one, so vacant listings come back with NULL t_* columns.
const selectListingRowsSQL = `
SELECT
  p.id, p.street_address, p.neighborhood, p.city, p.state, p.description,
  p.rent_amount, p.bedrooms, p.bathrooms, p.floor_number,
  p.laundry, p.parking, p.doorman,
  p.garden, p.balcony, p.roof, p.cats_allowed, p.dogs_allowed,
  p.furnished, p.air_conditioning, p.dishwasher,
  t.id          AS t_id,
  t.contact_id  AS t_contact_id,
  t.start_date  AS t_start_date,
  t.end_date    AS t_end_date,
  t.rent_amount AS t_rent_amount
FROM properties p
LEFT JOIN tenancies t
  ON t.property_id = p.id
 AND t.end_date IS NULL
`

const orderByListingSQL = " ORDER BY p.id"
