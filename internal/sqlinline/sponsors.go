package sqlinline

// The insert is conditional on the email being free; no returned row means
// the address is already registered.
const QInsertSponsor = `--sql b2d8e561-c7d1-4655-bc28-1e40b43a48a2
insert into sponsors (name, email, password_hash, country, api_key)
values ($1::text, $2::text, $3::text, $4::text, $5::text)
on conflict (email) do nothing
returning id, created_at;
`

const QSelectSponsorByID = `--sql 27a57eaa-afcb-4b24-938e-c75ff0cd5f4e
select id, name, email, password_hash, country, bio, avatar_url, api_key, is_active, created_at
from sponsors
where id = $1::uuid;
`

const QSelectSponsorByEmail = `--sql e017203a-2023-45da-885d-7a7112ca887a
select id, name, email, password_hash, country, bio, avatar_url, api_key, is_active, created_at
from sponsors
where email = $1::text;
`

const QSelectSponsorByAPIKey = `--sql dbc9b7ed-b0e3-4df2-9bc5-9156cc5166ab
select id, name, email, password_hash, country, bio, avatar_url, api_key, is_active, created_at
from sponsors
where api_key = $1::text;
`

const QSetSponsorAPIKey = `--sql 84578d14-4864-49b9-9232-e678ea1a13c5
update sponsors
set api_key = $2::text
where id = $1::uuid;
`
