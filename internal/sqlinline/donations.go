package sqlinline

const QInsertDonation = `--sql 0804c1b4-4168-445f-ab24-bc5a6ee708fa
insert into donations (sponsor_id, child_id, amount, currency, month, status)
values ($1::uuid, $2::uuid, $3::float8, $4::text, $5::text, $6::text)
returning id, created_at;
`

const QListDonationsBySponsor = `--sql 252f55c2-3a2a-4536-88b4-4296ef82afd9
select id, sponsor_id, child_id, amount, currency, month, status, created_at
from donations
where sponsor_id = $1::uuid;
`
