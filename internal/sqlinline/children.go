package sqlinline

const QInsertChild = `--sql 8e4436b2-d0b5-43d5-9b2d-99e45f946fcf
insert into children (name, age, country, bio, photo_url)
values ($1::text, $2::int, $3::text, $4::text, $5::text)
returning id, created_at;
`

const QSelectChildByID = `--sql 6bf8e57f-769c-4570-ad79-a1507dbb2ff1
select id, name, age, country, bio, photo_url, sponsored, sponsored_by, created_at
from children
where id = $1::uuid;
`

// Both filters are optional: an empty country and a null sponsored flag
// match every row.
const QListChildren = `--sql b0a31507-6db1-441a-aa95-c4dadf48471a
select id, name, age, country, bio, photo_url, sponsored, sponsored_by, created_at
from children
where ($1::text = '' or country = $1::text)
  and ($2::boolean is null or sponsored = $2::boolean);
`

const QListChildrenBySponsor = `--sql 55afca37-d621-4253-9d3a-f3a215956be0
select id, name, age, country, bio, photo_url, sponsored, sponsored_by, created_at
from children
where sponsored_by = $1::uuid;
`

// The claim matches only unsponsored rows; zero rows affected means the
// child is either taken or missing, which QChildExists disambiguates.
const QClaimChild = `--sql 64566dcf-3b72-44ab-8fdb-6538692c68b3
update children
set sponsored = true, sponsored_by = $2::uuid
where id = $1::uuid and sponsored = false;
`

const QChildExists = `--sql 8dbafb3f-bd8e-4637-9213-861cf80905ad
select exists (select 1 from children where id = $1::uuid);
`
